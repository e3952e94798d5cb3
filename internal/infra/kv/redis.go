package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps each collection under one namespaced redis string.
type RedisStore struct {
	rdb *redis.Client
	ns  string
	log *zap.Logger
}

func NewRedisStore(rdb *redis.Client, namespace string, log *zap.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, ns: namespace, log: log}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := s.rdb.Get(ctx, s.ns+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Sugar().Warnw("store read", "key", key, "err", err)
		}
		return nil, false
	}
	return raw, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, s.ns+key, value, 0).Err()
}
