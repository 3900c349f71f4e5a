package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: return the cached value for key
// if present, otherwise run load (which must populate dest) and store the
// result. Cache failures degrade to the loader; they never fail the call.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, load func() error) error {
	if client != nil {
		raw, err := client.Get(ctx, key).Bytes()
		if err == nil {
			if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
				return nil
			}
			// Corrupt entry: drop it and fall through to the loader.
			client.Del(ctx, key)
		} else if !errors.Is(err, redis.Nil) {
			slog.Warn("cache read failed", "key", key, "error", err)
		}
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		raw, err := json.Marshal(dest)
		if err != nil {
			slog.Warn("cache marshal failed", "key", key, "error", err)
			return nil
		}
		if err := client.Set(ctx, key, raw, ttl).Err(); err != nil {
			slog.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return nil
}
