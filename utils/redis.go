package utils

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/schoolms/school-management-backend/config"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// ErrKeyNotFound is returned when a key is absent or expired.
var ErrKeyNotFound = errors.New("key not found")

// InitRedis connects the shared Redis client. Redis backs the token
// revocation set and the tenant resolution cache, so every server
// instance sees the same state.
func InitRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return RedisClient.Ping(ctx).Err()
}

// SetKey stores a value with a TTL
func SetKey(key, value string, ttl time.Duration) error {
	return RedisClient.Set(ctx, key, value, ttl).Err()
}

// GetKey fetches a value; ErrKeyNotFound when absent
func GetKey(key string) (string, error) {
	val, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrKeyNotFound
	}
	return val, err
}

// DeleteKey removes a key
func DeleteKey(key string) error {
	return RedisClient.Del(ctx, key).Err()
}

// KeyStore is the subset of Redis the services depend on. Injected so
// services stay testable without a live Redis.
type KeyStore interface {
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

// RedisStore adapts the package-level helpers to KeyStore.
type RedisStore struct{}

func (RedisStore) Set(key, value string, ttl time.Duration) error { return SetKey(key, value, ttl) }
func (RedisStore) Get(key string) (string, error)                 { return GetKey(key) }
func (RedisStore) Delete(key string) error                        { return DeleteKey(key) }
