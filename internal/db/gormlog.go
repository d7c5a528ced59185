package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"chitfund-app-go/pkg/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQuery = 500 * time.Millisecond

// gormLog routes gorm output through the application logger. Record-not-found
// is a normal lookup miss and is never logged.
type gormLog struct {
	log       logger.Logger
	level     gormlogger.LogLevel
	slowQuery time.Duration
}

func newGormLog(log logger.Logger, slowQuery time.Duration) *gormLog {
	if slowQuery <= 0 {
		slowQuery = defaultSlowQuery
	}
	return &gormLog{log: log, level: gormlogger.Warn, slowQuery: slowQuery}
}

func (g *gormLog) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	copied := *g
	copied.level = level
	return &copied
}

func (g *gormLog) Info(ctx context.Context, message string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.log.Log(ctx, slog.LevelInfo, "gorm: "+fmt.Sprintf(message, args...))
	}
}

func (g *gormLog) Warn(ctx context.Context, message string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.log.Log(ctx, slog.LevelWarn, "gorm: "+fmt.Sprintf(message, args...))
	}
}

func (g *gormLog) Error(ctx context.Context, message string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.log.Log(ctx, slog.LevelError, "gorm: "+fmt.Sprintf(message, args...))
	}
}

// ParamsFilter drops bound values so logged SQL keeps its $N placeholders.
// Member rows carry KYC numbers that must never reach the logs.
func (g *gormLog) ParamsFilter(ctx context.Context, sql string, params ...interface{}) (string, []interface{}) {
	return sql, nil
}

func (g *gormLog) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		sql, rows := fc()
		g.log.Log(ctx, slog.LevelError, "db: query failed", "err", err, "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())
	case elapsed > g.slowQuery && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.log.Log(ctx, slog.LevelWarn, "db: slow query", "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.log.Log(ctx, slog.LevelDebug, "db: query", "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())
	}
}
