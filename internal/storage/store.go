// Package storage provides abstractions for persistent data storage.
//
// People and bills are kept as JSON documents in a string key-value Store.
// Repository maps them to and from the domain models.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when the key has never been set.
var ErrNotFound = errors.New("key not found")

// Store defines the interface for key-value storage operations.
// This abstraction allows swapping storage backends (memory, SQLite, Redis)
// without changing the repository or service layer.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
