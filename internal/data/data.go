package data

import (
	"context"
	"database/sql"
	"time"

	"shortly/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "github.com/lib/pq"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewMappingRepo, NewStatsRepo, NewUnitOfWork, NewURLCache)

// Data holds the shared store and cache handles. The cache client is
// constructed once here and passed by reference, never held as a global.
type Data struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewData opens the durable store and the cache connection.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	db, err := openDB(c.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := db.AutoMigrate(&UrlMapping{}, &UrlStats{}); err != nil {
		return nil, nil, err
	}

	d := &Data{
		db:  db,
		rdb: newRedisClient(c.Redis, helper),
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		if sqlDB, err := d.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				helper.Error(err)
			}
		}
		if d.rdb != nil {
			if err := d.rdb.Close(); err != nil {
				helper.Error(err)
			}
		}
	}

	return d, cleanup, nil
}

func openDB(c *conf.Database, logger log.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(logger),
	}

	if c.Driver == "postgres" {
		sqlDB, err := sql.Open("postgres", c.Source)
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
	}

	return gorm.Open(sqlite.Open(c.Source), cfg)
}

// newRedisClient connects to Redis, or returns nil when the cache is not
// configured or unreachable. Resolution degrades to store lookups then.
func newRedisClient(c *conf.Redis, helper *log.Helper) *redis.Client {
	if c == nil || c.Addr == "" {
		helper.Warn("redis not configured, resolution cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		helper.Warnf("redis unreachable at %s, resolution cache disabled: %v", c.Addr, err)
		_ = rdb.Close()
		return nil
	}

	return rdb
}
