package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"grocery/config"
	deliverycontext "grocery/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_LevelFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	debug := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Info, debug.level)

	quiet := newGormSlogLogger(slog.Default(), &config.Config{}).(*gormSlogLogger)
	assert.Equal(t, logger.Warn, quiet.level)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		begin   time.Time
		err     error
		want    string
		wantLog bool
	}{
		{name: "query error", begin: time.Now(), err: errors.New("boom"), want: "GORM query failed", wantLog: true},
		{name: "record not found is ignored", begin: time.Now(), err: gorm.ErrRecordNotFound, wantLog: false},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "GORM slow query", wantLog: true},
		{name: "fast query below info", begin: time.Now(), wantLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

			l.Trace(context.Background(), tt.begin, sqlFn("SELECT 1"), tt.err)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-9")))

	l.Trace(ctx, time.Now(), sqlFn("SELECT 2"), errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 3"), errors.New("boom"))
	l.Error(context.Background(), "ignored %d", 1)

	assert.Empty(t, buf.String())
}
