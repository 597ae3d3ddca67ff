package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces admin auth token hashes in Redis.
const AuthCachePrefix = "auth:admin:"

// NewAuthCacheClient builds the Redis client used for the admin auth token
// cache. Returns nil when the server cannot be reached; callers treat a nil
// client as "cache unavailable" and fall back to database lookups.
func NewAuthCacheClient(addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Sugar().Warnf("auth cache unavailable at %s: %v", addr, err)
		return nil
	}
	return client
}
