package port

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// KeyValueStore values are overwritten wholesale on every Put.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) (bool, error)
}
