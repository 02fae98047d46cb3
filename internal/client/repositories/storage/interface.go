// Package storage is the durable key-value store the client keeps on the
// device. Values are opaque bytes; callers own their encoding.
package storage

import (
	"context"
)

// Repository is a whole-value key-value store.
//
// Get returns (nil, nil) for an absent key. Set replaces the full value.
// Delete of an absent key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
