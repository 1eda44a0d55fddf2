package data

import (
	"context"
	"errors"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger adapts the Kratos logger to gorm's logger.Interface.
type gormLogger struct {
	log *log.Helper
}

func newGormLogger(logger log.Logger) gormlogger.Interface {
	return &gormLogger{log: log.NewHelper(logger)}
}

// LogMode is a no-op; level filtering is handled by the Kratos logger.
func (l *gormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.WithContext(ctx).Infof(msg, args...)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.WithContext(ctx).Warnf(msg, args...)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.WithContext(ctx).Errorf(msg, args...)
}

// Trace logs failed and slow statements only; record-not-found is part of
// normal lookup flow and stays quiet.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.WithContext(ctx).Errorw("msg", "sql failed", "sql", sql, "rows", rows, "error", err)
	case elapsed > slowQueryThreshold:
		sql, rows := fc()
		l.log.WithContext(ctx).Warnw("msg", "slow sql", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
