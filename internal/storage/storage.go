// Package storage defines the key-value persistence interface the task store
// writes through, with a bolt-backed implementation and an in-memory one.
package storage

import "errors"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store closed")

// KV is a flat key-value store. Values are opaque bytes; Put overwrites.
type KV interface {
	// Get returns the value for key or ErrNotFound.
	Get(key string) ([]byte, error)

	// Put stores value under key, replacing prior content.
	Put(key string, value []byte) error

	// Close releases the underlying resources.
	Close() error
}
