package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrNotFound indicates the requested show does not exist
	ErrNotFound = errors.New("show not found")

	// ErrServerOffline indicates the catalog service is unreachable
	ErrServerOffline = errors.New("catalog service is unreachable")

	// ErrRateLimited indicates the catalog kept rejecting requests for exceeding its rate limit
	ErrRateLimited = errors.New("catalog rate limit exceeded")

	// ErrBadResponse indicates the catalog returned a payload that could not be parsed
	ErrBadResponse = errors.New("catalog returned a malformed response")
)
