// Package rediskv implements the blob backend on Redis. Each key maps to
// one Redis string under a service prefix; SET is atomic, so a reader sees
// either the previous snapshot or the new one.
package rediskv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/phani92/mate-service/internal/storage"
)

const keyPrefix = "mate:"

// Backend stores blobs as Redis strings.
type Backend struct {
	client *redis.Client
}

// New connects to the Redis instance at addr and verifies it is reachable.
func New(ctx context.Context, addr string, db int) (*Backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return &Backend{client: client}, nil
}

// Get returns the blob stored under key, or storage.ErrNotFound.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting blob %s: %w", key, err)
	}
	return data, nil
}

// Put replaces the blob stored under key. No expiry: the snapshot lives
// until the next write or an explicit flush.
func (b *Backend) Put(ctx context.Context, key string, blob []byte) error {
	if err := b.client.Set(ctx, keyPrefix+key, blob, 0).Err(); err != nil {
		return fmt.Errorf("storing blob %s: %w", key, err)
	}
	return nil
}

// Close closes the client connection. Idempotent.
func (b *Backend) Close() error {
	if b.client == nil {
		return nil
	}
	err := b.client.Close()
	b.client = nil
	return err
}
