package data

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"user-records-example/internal/biz/model"
)

// Store 以 K 为主键的记录存储，只支持查询和不存在时插入
type Store[K comparable, V any] interface {
	// Get 返回记录，不存在时返回 model.ErrRecordNotFound
	Get(ctx context.Context, key K) (V, error)
	// Insert 仅在主键不存在时写入，已存在时返回 model.ErrUserAlreadyExists 且不修改原记录
	Insert(ctx context.Context, key K, value V) (V, error)
	Ping(ctx context.Context) error
}

// MemoryStore 进程内存储，读写由 RWMutex 保护
type MemoryStore[K comparable, V any] struct {
	mu      sync.RWMutex
	records map[K]V
}

var _ Store[int64, model.Profile] = (*MemoryStore[int64, model.Profile])(nil)

func NewMemoryStore[K comparable, V any]() *MemoryStore[K, V] {
	return &MemoryStore[K, V]{
		records: make(map[K]V),
	}
}

func (s *MemoryStore[K, V]) Get(_ context.Context, key K) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.records[key]
	if !ok {
		var zero V
		return zero, model.ErrRecordNotFound
	}
	return v, nil
}

func (s *MemoryStore[K, V]) Insert(_ context.Context, key K, value V) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; ok {
		var zero V
		return zero, model.ErrUserAlreadyExists
	}
	s.records[key] = value
	return value, nil
}

func (s *MemoryStore[K, V]) Ping(context.Context) error {
	return nil
}

// Len 返回记录数
func (s *MemoryStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// encodeKey 外部存储统一使用字符串主键
func encodeKey[K comparable](key K) string {
	return fmt.Sprint(key)
}

func decodeRecord[V any](body []byte) (V, error) {
	var v V
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode record: %w", err)
	}
	return v, nil
}
