package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/shop-sim/internal/config"
	"github.com/rl1809/shop-sim/internal/port"
)

// AuditTrail is an audit sink whose records can be read back.
type AuditTrail interface {
	port.AuditSink
	Lines(ctx context.Context) ([]string, error)
}

// OpenAuditTrail connects the backend selected by cfg.AuditSink. The returned
// close func releases any connection and is never nil.
func OpenAuditTrail(ctx context.Context, cfg *config.Config) (AuditTrail, func() error, error) {
	switch cfg.AuditSink {
	case config.AuditSinkRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:                  cfg.RedisAddr,
			Password:              cfg.RedisPass,
			DB:                    cfg.RedisDB,
			ContextTimeoutEnabled: true,
		})
		pingCtx, cancel := context.WithTimeout(ctx, cfg.BackendTimeout)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return NewRedisAuditLog(rdb, cfg.AuditRedisKey, cfg.BackendTimeout), rdb.Close, nil

	case config.AuditSinkMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		db.SetMaxOpenConns(2)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(5 * time.Minute)

		pingCtx, cancel := context.WithTimeout(ctx, cfg.BackendTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping mysql: %w", err)
		}

		sink := NewMySQLAuditLog(db, cfg.BackendTimeout)
		if err := sink.EnsureSchema(pingCtx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return sink, db.Close, nil

	default:
		return NewFileAuditLog(cfg.AuditLogPath), func() error { return nil }, nil
	}
}
