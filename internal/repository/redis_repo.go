package repository

import (
	"auction-client/internal/biddingerrors"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// RedisConfig captures the settings for the Redis session backend
type RedisConfig struct {
	Addr    string
	DB      int
	Prefix  string
	Timeout time.Duration
}

// RedisRepo stores slots as plain Redis strings under a key prefix
type RedisRepo struct {
	client *redis.Client
	prefix string
}

// NewRedisRepo wraps an existing client
func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	return &RedisRepo{client: client, prefix: prefix}
}

// ConnectRedis initialises a Redis client and validates connectivity with a ping
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*RedisRepo, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewRedisRepo(client, cfg.Prefix), nil
}

// Get returns the value stored under key
func (r *RedisRepo) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("get slot %s: %w", key, biddingerrors.ErrSlotEmpty)
	}
	if err != nil {
		return "", fmt.Errorf("get slot %s: %w", key, err)
	}
	return v, nil
}

// SetAll writes every pair inside one MULTI/EXEC transaction
func (r *RedisRepo) SetAll(ctx context.Context, values map[string]string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			if k == "" {
				return fmt.Errorf("empty key")
			}
			pipe.Set(ctx, r.key(k), v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("set slots: %w", err)
	}
	return nil
}

// Delete removes keys in a single DEL
func (r *RedisRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, r.key(k))
	}
	if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("delete slots: %w", err)
	}
	return nil
}

// Close releases the underlying client
func (r *RedisRepo) Close() error {
	return r.client.Close()
}

func (r *RedisRepo) key(k string) string {
	return r.prefix + k
}
