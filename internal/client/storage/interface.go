// Package storage implements the durable key-value store backing the
// credential store and the gating flags. Values are opaque bytes; keys are
// the logical entries listed in keys.go.
package storage

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
