package kvstore

import (
	"context"
	"errors"
	"time"
)

var ErrKeyExists = errors.New("key already exists")

// Store is a small TTL key-value contract used for idempotency keys and
// other short-lived markers.
type Store interface {
	// SetNX stores value under key with a TTL only if the key is absent;
	// returns ErrKeyExists otherwise.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) error

	Get(ctx context.Context, key string) (string, bool, error)

	Delete(ctx context.Context, key string) error
}
