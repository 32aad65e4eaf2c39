package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"educonnect_backend/internals/configs"
)

// ConnectDB opens PostgreSQL for the gorm-backed record store.
// With PgBouncer point DB_HOST/DB_PORT at the pooler; PreferSimpleProtocol stays on.
func ConnectDB(cfg configs.DBConfig, logger log.Logger) (*gorm.DB, error) {
	level.Info(logger).Log("msg", "connecting to PostgreSQL", "host", cfg.Host, "db", cfg.Name)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: configs.NewGormLogger(logger)})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	level.Info(logger).Log("msg", "db connected")
	return db, nil
}

// TunePool sizes the pool for a single-writer store: one row, few queries.
func TunePool(db *gorm.DB, logger log.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		level.Warn(logger).Log("msg", "pool tune failed", "err", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Ping checks the connection within timeout.
func Ping(ctx context.Context, db *gorm.DB, timeout time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
