package log

import (
	"context"
	"testing"

	confv1 "user-records-example/internal/conf/v1"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type recordingLogger struct {
	embedded.Logger
	records []otellog.Record
}

func (l *recordingLogger) Emit(_ context.Context, rec otellog.Record) {
	l.records = append(l.records, rec)
}

func (l *recordingLogger) Enabled(context.Context, otellog.EnabledParameters) bool {
	return true
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *confv1.Log
		level   zapcore.Level
		wantErr bool
	}{
		{"nil config", nil, zapcore.InfoLevel, false},
		{"debug console", &confv1.Log{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"upper case level", &confv1.Log{Level: "WARN"}, zapcore.WarnLevel, false},
		{"bad level", &confv1.Log{Level: "loud"}, 0, true},
		{"bad format", &confv1.Log{Format: "xml"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Build(tt.cfg, false)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.level))
			assert.False(t, logger.Core().Enabled(tt.level-1))
		})
	}
}

func TestOTelCore_Write(t *testing.T) {
	rec := &recordingLogger{}
	core := NewOTelCore(rec, zapcore.InfoLevel)
	logger := zap.New(core).Named("svc").With(zap.String("component", "store"))

	logger.Debug("dropped")
	logger.Warn("user not found", zap.Int64("id", 999))

	require.Len(t, rec.records, 1)
	got := rec.records[0]
	assert.Equal(t, "user not found", got.Body().AsString())
	assert.Equal(t, otellog.SeverityWarn, got.Severity())
	assert.Equal(t, "WARN", got.SeverityText())

	attrs := map[string]string{}
	got.WalkAttributes(func(kv otellog.KeyValue) bool {
		attrs[kv.Key] = kv.Value.AsString()
		return true
	})
	assert.Equal(t, "store", attrs["component"])
	assert.Equal(t, "999", attrs["id"])
	assert.Equal(t, "svc", attrs["logger"])
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, otellog.SeverityDebug, severity(zapcore.DebugLevel))
	assert.Equal(t, otellog.SeverityInfo, severity(zapcore.InfoLevel))
	assert.Equal(t, otellog.SeverityError, severity(zapcore.ErrorLevel))
	assert.Equal(t, otellog.SeverityFatal4, severity(zapcore.FatalLevel))
}
