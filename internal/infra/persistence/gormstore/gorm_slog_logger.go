package gormstore

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"pumpdesk/config"
	"pumpdesk/internal/domain/entity"
	"pumpdesk/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// sensitiveColumns mark statements whose bound values are secrets: account
// credentials, and pump statuses that may hold a proposed password.
var sensitiveColumns = []string{"password_hash", "password_salt", "status"}

var sqlStringLiteral = regexp.MustCompile(`'(?:[^']|'')*'`)

// gormSlogLogger routes GORM statements to slog. Statement text is logged
// with literals masked whenever it touches credential or reset state.
type gormSlogLogger struct {
	logger        *slog.Logger
	driver        string
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:        baseLogger,
		driver:        config.StorageDriverSQLite,
		level:         logger.Warn,
		slowThreshold: defaultGormSlowThreshold,
	}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Storage.Driver != "" {
		l.driver = cfg.Storage.Driver
	}
	if cfg.Storage.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Storage.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, level, "Record store message",
		slog.String("driver", l.driver),
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(l.statementAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "Record store statement failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(l.statementAttrs(sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Record store statement slow", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Record store statement", l.statementAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) statementAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.String("driver", l.driver),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", redactSQL(sql)),
	}
}

// redactSQL masks string literals of statements that read or write secrets.
// GORM interpolates bound values into the logged text, so a pump status of
// "pending_reset:<password>" would otherwise reach the log verbatim.
func redactSQL(sql string) string {
	lowered := strings.ToLower(sql)
	sensitive := strings.Contains(sql, entity.PendingResetPrefix)
	for _, column := range sensitiveColumns {
		if sensitive {
			break
		}
		sensitive = strings.Contains(lowered, column)
	}
	if !sensitive {
		return sql
	}

	return sqlStringLiteral.ReplaceAllString(sql, "'***'")
}
