package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingGormLogger(debug bool, slow time.Duration) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Env.Log.SlowQuery = slow

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn() (string, int64) { return `SELECT * FROM "cakes"`, 3 }

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failed query", err: errors.New("boom"), want: "SQL query failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound},
		{name: "slow query", elapsed: time.Second, want: "SQL query slow"},
		{name: "fast query quiet without debug"},
		{name: "fast query logged in debug", debug: true, want: `"msg":"SQL query"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newCapturingGormLogger(tt.debug, 500*time.Millisecond)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"rows":3`)
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newCapturingGormLogger(false, time.Millisecond)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("requestID", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, reqBuf.String(), `"requestID":"req-42"`)
	assert.Contains(t, reqBuf.String(), `"component":"gorm"`)
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	l, buf := newCapturingGormLogger(true, time.Millisecond)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}
