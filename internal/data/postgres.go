package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"user-records-example/internal/biz/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	createRecordsTableSQL = `CREATE TABLE IF NOT EXISTS user_records (
	kind       TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	body       JSONB       NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (kind, key)
)`
	insertRecordSQL = `INSERT INTO user_records (kind, key, body) VALUES ($1, $2, $3) ON CONFLICT (kind, key) DO NOTHING`
	getRecordSQL    = `SELECT body FROM user_records WHERE kind = $1 AND key = $2`
)

// PgxQuerier 是 PostgresStore 用到的 pgxpool.Pool 子集
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStore 所有记录共用 user_records 表，按 kind 区分，(kind, key) 主键保证插入的原子性
type PostgresStore[K comparable, V any] struct {
	db   PgxQuerier
	kind string
}

func NewPostgresStore[K comparable, V any](db PgxQuerier, kind string) *PostgresStore[K, V] {
	return &PostgresStore[K, V]{
		db:   db,
		kind: kind,
	}
}

// EnsureSchema 创建记录表
func EnsureSchema(ctx context.Context, db PgxQuerier) error {
	if _, err := db.Exec(ctx, createRecordsTableSQL); err != nil {
		return fmt.Errorf("create user_records table: %w", err)
	}
	return nil
}

func (s *PostgresStore[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V
	var body []byte
	err := s.db.QueryRow(ctx, getRecordSQL, s.kind, encodeKey(key)).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, model.ErrRecordNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("query %s record: %w", s.kind, err)
	}
	return decodeRecord[V](body)
}

func (s *PostgresStore[K, V]) Insert(ctx context.Context, key K, value V) (V, error) {
	var zero V
	body, err := json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("encode record: %w", err)
	}

	tag, err := s.db.Exec(ctx, insertRecordSQL, s.kind, encodeKey(key), string(body))
	if err != nil {
		return zero, fmt.Errorf("insert %s record: %w", s.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return zero, model.ErrUserAlreadyExists
	}
	return value, nil
}

func (s *PostgresStore[K, V]) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
