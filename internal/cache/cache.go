package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

var ErrMiss = errors.New("cache miss")

// Store is a byte oriented key value store with per key expiry. A ttl <= 0 never expires.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// GetJSON decodes the cached value of key into v. It returns ErrMiss if key is absent.
func GetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "failed to decode cached %s", key)
	}

	return nil
}

// SetJSON stores v encoded as JSON under key.
func SetJSON(ctx context.Context, s Store, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s for cache", key)
	}

	return s.Set(ctx, key, data, ttl)
}
