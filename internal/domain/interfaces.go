package domain

import "context"

// CatalogClient queries the remote show catalog.
type CatalogClient interface {
	// Search returns shows matching text, in the catalog's relevance order
	Search(ctx context.Context, text string) ([]Show, error)

	// GetShow returns a single show by id
	GetShow(ctx context.Context, id int) (*Show, error)

	// GetEpisodes returns every episode of a show in airing order
	GetEpisodes(ctx context.Context, showID int) ([]Episode, error)
}

// KVStore is a durable key-value store for JSON-serializable values.
type KVStore interface {
	// Get decodes the value stored under key into dest.
	// found is false when the key is absent; err is non-nil when the stored
	// payload could not be decoded.
	Get(key string, dest any) (found bool, err error)

	// Set replaces the value stored under key
	Set(key string, value any) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
