package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"user-records-example/internal/biz/model"
	conf "user-records-example/internal/conf/v1"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// 记录种类，用于外部存储的键空间划分
const (
	KindProfile = "profile"
	KindAccount = "account"
)

// Module 导出给 FX 的 Provider
var Module = fx.Module("data",
	fx.Provide(
		NewData,
		NewProfileStore,
		NewAccountStore,
		NewCheckRepo,
	),
)

// Data 包含当前驱动所需的数据源客户端，未使用的客户端为 nil
type Data struct {
	driver string
	prefix string
	db     *pgxpool.Pool
	rdb    *redis.Client
}

// NewData 按 data.driver 建立对应的连接
func NewData(lc fx.Lifecycle, cfg *conf.Bootstrap, logger *zap.Logger) (*Data, error) {
	d := &Data{driver: cfg.Data.Driver}

	switch cfg.Data.Driver {
	case conf.DriverPostgres:
		pool, err := NewDB(lc, cfg, logger)
		if err != nil {
			return nil, err
		}
		d.db = pool
	case conf.DriverRedis:
		rdb, err := NewCache(lc, cfg, logger)
		if err != nil {
			return nil, err
		}
		d.rdb = rdb
		d.prefix = cfg.Data.Redis.KeyPrefix
	case conf.DriverMemory, "":
		d.driver = conf.DriverMemory
	default:
		return nil, fmt.Errorf("unknown data driver %q", cfg.Data.Driver)
	}

	logger.Info("Data layer initialized", zap.String("driver", d.driver))
	return d, nil
}

// NewDB 创建数据库连接池
func NewDB(lc fx.Lifecycle, cfg *conf.Bootstrap, logger *zap.Logger) (*pgxpool.Pool, error) {
	dbCfg := cfg.Data.Database

	connString := fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s&timezone=%s",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DbName,
		dbCfg.SslMode,
		dbCfg.Timezone,
	)

	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse database config failed: %w", err)
	}

	// 链路追踪配置
	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database failed: %w", err)
	}

	if err := otelpgx.RecordStats(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to record database stats: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("Database connected",
		zap.String("host", dbCfg.Host),
		zap.Int32("port", dbCfg.Port),
		zap.String("db", dbCfg.DbName),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing database connection...")
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

// NewCache 创建 Redis 客户端
func NewCache(lc fx.Lifecycle, cfg *conf.Bootstrap, logger *zap.Logger) (*redis.Client, error) {
	redisCfg := cfg.Data.Redis

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisCfg.Host, redisCfg.Port),
		Username:     redisCfg.Username,
		Password:     redisCfg.Password,
		DB:           int(redisCfg.Db),
		DialTimeout:  time.Duration(redisCfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(redisCfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(redisCfg.WriteTimeout) * time.Second,
		PoolSize:     int(redisCfg.PoolSize),
		MinIdleConns: int(redisCfg.MinIdleConns),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		// 关闭连接以避免资源泄漏
		return nil, errors.Join(fmt.Errorf("redis ping failed: %w", err), rdb.Close())
	}

	logger.Info("Redis connected", zap.String("host", redisCfg.Host), zap.Int32("port", redisCfg.Port))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis connection...")
			return rdb.Close()
		},
	})

	return rdb, nil
}

// newStore 按驱动创建某一种记录的存储
func newStore[K comparable, V any](d *Data, kind string) Store[K, V] {
	switch d.driver {
	case conf.DriverPostgres:
		return NewPostgresStore[K, V](d.db, kind)
	case conf.DriverRedis:
		return NewRedisStore[K, V](d.rdb, d.prefix, kind)
	default:
		return NewMemoryStore[K, V]()
	}
}

// seedProfiles 初始数据
var seedProfiles = []model.Profile{
	{ID: 1, Name: "Alice"},
	{ID: 2, Name: "Bob"},
}

// NewProfileStore 创建以整数 ID 为主键的 Profile 存储，data.seed 为 true 时写入初始数据
func NewProfileStore(d *Data, cfg *conf.Bootstrap, logger *zap.Logger) (Store[int64, model.Profile], error) {
	store := newStore[int64, model.Profile](d, KindProfile)
	if !cfg.Data.Seed {
		return store, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range seedProfiles {
		_, err := store.Insert(ctx, p.ID, p)
		// 外部存储重启后种子数据已存在
		if err != nil && !errors.Is(err, model.ErrUserAlreadyExists) {
			return nil, fmt.Errorf("seed profile %d: %w", p.ID, err)
		}
	}
	logger.Debug("Profile store seeded", zap.Int("count", len(seedProfiles)))

	return store, nil
}

// NewAccountStore 创建以用户名为主键的 Account 存储
func NewAccountStore(d *Data) Store[string, model.Account] {
	return newStore[string, model.Account](d, KindAccount)
}
