package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"user-records-example/internal/biz/model"

	"github.com/redis/go-redis/v9"
)

// RedisClient 是 RedisStore 用到的 redis.Client 子集
type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisStore 记录以 JSON 保存在 "{prefix}:{kind}:{key}"，SETNX 保证插入的原子性
type RedisStore[K comparable, V any] struct {
	rdb    RedisClient
	prefix string
	kind   string
}

func NewRedisStore[K comparable, V any](rdb RedisClient, prefix, kind string) *RedisStore[K, V] {
	return &RedisStore[K, V]{
		rdb:    rdb,
		prefix: prefix,
		kind:   kind,
	}
}

func (s *RedisStore[K, V]) key(key K) string {
	if s.prefix == "" {
		return fmt.Sprintf("%s:%s", s.kind, encodeKey(key))
	}
	return fmt.Sprintf("%s:%s:%s", s.prefix, s.kind, encodeKey(key))
}

func (s *RedisStore[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V
	body, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, model.ErrRecordNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("redis get %s: %w", s.key(key), err)
	}
	return decodeRecord[V](body)
}

func (s *RedisStore[K, V]) Insert(ctx context.Context, key K, value V) (V, error) {
	var zero V
	body, err := json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("encode record: %w", err)
	}

	ok, err := s.rdb.SetNX(ctx, s.key(key), body, 0).Result()
	if err != nil {
		return zero, fmt.Errorf("redis setnx %s: %w", s.key(key), err)
	}
	if !ok {
		return zero, model.ErrUserAlreadyExists
	}
	return value, nil
}

func (s *RedisStore[K, V]) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
