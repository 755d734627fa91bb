package store

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable signals that the storage location could not be
// created or opened at all. Everything else is a StorageError.
var ErrStorageUnavailable = errors.New("store: storage unavailable")

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("store: entry not found")

// StorageError wraps a failed store operation with its op and key so callers
// can report something actionable without losing the cause.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
