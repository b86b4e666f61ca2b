// Package redis keeps HTTP sessions in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	redis "github.com/redis/go-redis/v9"
)

var _ fiber.Storage = (*SessionStorage)(nil)

const (
	defaultTimeout = 2 * time.Second
	scanBatch      = 100
)

// Options configures the Redis client.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// SessionStorage implements fiber.Storage. Every key is namespaced by prefix.
type SessionStorage struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewSessionStorage connects to Redis and verifies the connection.
func NewSessionStorage(ctx context.Context, opts Options) (*SessionStorage, error) {
	client := redis.NewClient(&redis.Options{Addr: opts.Addr, Password: opts.Password, DB: opts.DB})

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	return newSessionStorage(client, opts.Prefix), nil
}

func newSessionStorage(client *redis.Client, prefix string) *SessionStorage {
	return &SessionStorage{
		client:  client,
		prefix:  prefix,
		timeout: defaultTimeout,
	}
}

// Get returns nil without error when the key does not exist.
func (s *SessionStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()

	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return val, nil
}

// Set stores val. A zero exp keeps the key without expiration.
func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), val, exp).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (s *SessionStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Reset removes every key under the prefix.
func (s *SessionStorage) Reset() error {
	ctx, cancel := s.ctx()
	defer cancel()

	iter := s.client.Scan(ctx, 0, s.prefix+"*", scanBatch).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan sessions: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to reset sessions: %w", err)
	}
	return nil
}

func (s *SessionStorage) Close() error {
	return s.client.Close()
}

// Ping reports whether Redis is reachable.
func (s *SessionStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SessionStorage) key(k string) string {
	return s.prefix + k
}

func (s *SessionStorage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}
