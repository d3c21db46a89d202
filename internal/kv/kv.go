// Package kv provides the byte-level key-value stores that hold board
// snapshots.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("kv: key not found")

// Store is a synchronous get/set byte store. Set replaces the whole value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Backend names.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend string
	Dir     string
	Redis   RedisOptions
}

// RedisOptions configures the Redis backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Open builds the store named by opts.Backend. The returned close function
// releases backend resources and is never nil.
func Open(opts Options) (Store, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case BackendMemory:
		return NewMemory(), noop, nil
	case "", BackendFile:
		store, err := NewFile(opts.Dir)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.Redis.Addr,
			Password: opts.Redis.Password,
			DB:       opts.Redis.DB,
		})
		return NewRedis(client, opts.Redis.Prefix), client.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown backend %q (expected file|memory|redis)", opts.Backend)
	}
}
