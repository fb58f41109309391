package gormrepo

import (
	"context"
	"errors"
	"time"

	gormlogger "gorm.io/gorm/logger"

	"github.com/souvikjs01/unkey/pkg/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// slogLogger forwards GORM's logs to pkg/logger.
type slogLogger struct {
	level gormlogger.LogLevel
}

func newLogger() gormlogger.Interface {
	return &slogLogger{level: gormlogger.Warn}
}

func (l *slogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &slogLogger{level: level}
}

func (l *slogLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		logger.Info(msg, "args", args)
	}
}

func (l *slogLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		logger.Warn(msg, "args", args)
	}
}

func (l *slogLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		logger.Error(msg, "args", args)
	}
}

func (l *slogLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		logger.Error("gorm query", "sql", sql, "rows", rows, "elapsed", elapsed, "error", err)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.Warn("gorm slow query", "sql", sql, "rows", rows, "elapsed", elapsed)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		logger.Debug("gorm query", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
