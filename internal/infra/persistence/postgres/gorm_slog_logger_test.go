package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, cfg *config.Config) *gormSlogLogger {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return newGormSlogLogger(slog.New(handler), cfg).(*gormSlogLogger)
}

func storeQuery() (string, int64) {
	return `SELECT * FROM "stores" WHERE slug = 'ramen-shop'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		elapsed time.Duration
		err     error
		want    string
		wantNot string
	}{
		{
			name:    "failed query",
			cfg:     &config.Config{},
			err:     errors.New("relation does not exist"),
			want:    `"msg":"GORM query failed"`,
			wantNot: "GORM slow query",
		},
		{
			name:    "missing store is not an error",
			cfg:     &config.Config{},
			err:     gorm.ErrRecordNotFound,
			wantNot: "GORM query failed",
		},
		{
			name:    "slow query above the configured threshold",
			cfg:     &config.Config{Storage: config.StorageConfig{SlowQueryThreshold: 10 * time.Millisecond}},
			elapsed: 50 * time.Millisecond,
			want:    `"slow_threshold":10000000`,
		},
		{
			name:    "fast query outside debug",
			cfg:     &config.Config{},
			wantNot: "GORM query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestGormLogger(&buf, tt.cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), storeQuery, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_DebugLogsEveryQueryWithRequestLogger(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	var base, scoped bytes.Buffer
	l := newTestGormLogger(&base, cfg)
	reqLogger := slog.New(slog.NewJSONHandler(&scoped, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("request_id", "req-7"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), storeQuery, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"msg":"GORM query"`)
	assert.Contains(t, scoped.String(), `"request_id":"req-7"`)
	assert.Contains(t, scoped.String(), `"rows":1`)
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, &config.Config{})

	l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), storeQuery, errors.New("boom"))
	l.LogMode(gormlogger.Silent).Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}
