package kvstore

import (
	"context"
	"errors"
)

// Store is string-keyed durable storage for serialized session state.
// Callers treat a missing or unreadable entry as empty state, never as a
// fatal error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("key not found")
