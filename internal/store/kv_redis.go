// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
)

// redisKVStore is the [KVStore] over a redis database. Keys are namespaced
// with prefix so that several wallets can share one server.
type redisKVStore struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// NewConnectRedis parses url, connects and pings the server.
func NewConnectRedis(ctx context.Context, url, prefix string, log *logger.Logger) (KVStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Debug().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return NewRedisKVStore(client, prefix, log), nil
}

// NewRedisKVStore wraps an existing client.
func NewRedisKVStore(client *redis.Client, prefix string, log *logger.Logger) KVStore {
	return &redisKVStore{client: client, prefix: prefix, logger: log}
}

func (s *redisKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "redisKVStore.Get").Str("key", key).Msg("failed to read value")
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}

	return value, nil
}

func (s *redisKVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		s.logger.Err(err).Str("func", "redisKVStore.Set").Str("key", key).Msg("failed to write value")
		return fmt.Errorf("redis set %q: %w", key, err)
	}

	return nil
}

func (s *redisKVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		s.logger.Err(err).Str("func", "redisKVStore.Delete").Str("key", key).Msg("failed to delete value")
		return fmt.Errorf("redis del %q: %w", key, err)
	}

	return nil
}

func (s *redisKVStore) Close() error {
	return s.client.Close()
}
