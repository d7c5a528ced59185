package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"chitfund-app-go/internal/config"
	"chitfund-app-go/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
	pingTimeout            = 5 * time.Second
)

type poolSettings struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
}

func NewPostgres(cfg config.DBConfig, log logger.Logger) (*gorm.DB, error) {
	if cfg.DSN != "" {
		log.Info("db: connecting using DSN")
	} else {
		log.Info("db: connecting to postgres", "host", cfg.Host, "port", cfg.Port, "dbname", cfg.Name, "sslmode", cfg.SSLMode)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig(cfg, log))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	pool := applyPool(sqlDB, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	log.Info("db: connected", "max_open_conns", pool.maxOpen, "max_idle_conns", pool.maxIdle, "slow_query", cfg.SlowQuery)
	return gormDB, nil
}

// gormConfig translates driver errors into gorm sentinels so unique and
// foreign key violations surface as conflicts. Timestamps are stored in UTC.
func gormConfig(cfg config.DBConfig, log logger.Logger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         newGormLog(log, cfg.SlowQuery),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func applyPool(sqlDB *sql.DB, cfg config.DBConfig) poolSettings {
	pool := poolSettings{
		maxOpen:     cfg.MaxOpenConns,
		maxIdle:     cfg.MaxIdleConns,
		maxLifetime: cfg.ConnMaxLifetime,
	}
	if pool.maxOpen <= 0 {
		pool.maxOpen = defaultMaxOpenConns
	}
	if pool.maxIdle <= 0 {
		pool.maxIdle = defaultMaxIdleConns
	}
	if pool.maxIdle > pool.maxOpen {
		pool.maxIdle = pool.maxOpen
	}
	if pool.maxLifetime <= 0 {
		pool.maxLifetime = defaultConnMaxLifetime
	}

	sqlDB.SetMaxOpenConns(pool.maxOpen)
	sqlDB.SetMaxIdleConns(pool.maxIdle)
	sqlDB.SetConnMaxLifetime(pool.maxLifetime)
	return pool
}
