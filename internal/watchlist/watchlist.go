// Package watchlist keeps the user's saved shows, mirrored to a KVStore
// entry after every change.
package watchlist

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/mmcdole/tvshelf/internal/domain"
)

// DefaultKey is the store key holding the encoded watchlist
const DefaultKey = "watchlist"

// Insert appends show unless an entry with the same ID exists.
// The input slice is never modified.
func Insert(list []domain.Show, show domain.Show) ([]domain.Show, bool) {
	if contains(list, show.ID) {
		return list, false
	}
	next := make([]domain.Show, 0, len(list)+1)
	next = append(next, list...)
	return append(next, show), true
}

// Delete drops the entry with id, keeping the order of the rest.
func Delete(list []domain.Show, id int) ([]domain.Show, bool) {
	idx := slices.IndexFunc(list, func(s domain.Show) bool { return s.ID == id })
	if idx < 0 {
		return list, false
	}
	next := make([]domain.Show, 0, len(list)-1)
	next = append(next, list[:idx]...)
	return append(next, list[idx+1:]...), true
}

func contains(list []domain.Show, id int) bool {
	return slices.ContainsFunc(list, func(s domain.Show) bool { return s.ID == id })
}

// Store is the write-through watchlist.
type Store struct {
	kv     domain.KVStore
	key    string
	logger *slog.Logger

	mu    sync.RWMutex
	items []domain.Show
}

// Open hydrates the watchlist from kv. A missing or undecodable entry
// yields an empty list.
func Open(kv domain.KVStore, key string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if key == "" {
		key = DefaultKey
	}

	s := &Store{kv: kv, key: key, logger: logger}

	var stored []domain.Show
	found, err := kv.Get(key, &stored)
	switch {
	case err != nil:
		logger.Debug("discarding malformed watchlist", "key", key, "error", err)
	case found:
		s.items = dedupe(stored)
	}
	logger.Debug("hydrated watchlist", "count", len(s.items))

	return s
}

// Items returns a copy of the saved shows in insertion order.
func (s *Store) Items() []domain.Show {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Contains reports whether a show with id is saved.
func (s *Store) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.items, id)
}

// Add saves show. It is a no-op when the show is already present.
func (s *Store) Add(show domain.Show) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, added := Insert(s.items, show)
	if !added {
		return false, nil
	}
	return true, s.persistLocked(next)
}

// Remove drops the show with id, if present.
func (s *Store) Remove(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed := Delete(s.items, id)
	if !removed {
		return false, nil
	}
	return true, s.persistLocked(next)
}

// Replace overwrites the whole list and persists it.
func (s *Store) Replace(items []domain.Show) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(dedupe(items))
}

// Clear empties the list and erases the stored entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.kv.Remove(s.key); err != nil {
		s.logger.Error("failed to erase watchlist", "error", err)
		return err
	}
	s.logger.Info("cleared watchlist")
	return nil
}

// persistLocked adopts items in memory, then rewrites the whole entry.
// The in-memory list is kept even if the write fails.
func (s *Store) persistLocked(items []domain.Show) error {
	s.items = items
	if err := s.kv.Set(s.key, items); err != nil {
		s.logger.Error("failed to save watchlist", "error", err, "count", len(items))
		return err
	}
	s.logger.Debug("saved watchlist", "count", len(items))
	return nil
}

func dedupe(list []domain.Show) []domain.Show {
	out := make([]domain.Show, 0, len(list))
	for _, s := range list {
		out, _ = Insert(out, s)
	}
	return out
}
