package log

import (
	"context"
	"fmt"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

// otelCore 把 zap 日志条目转换为 OTel 日志记录
type otelCore struct {
	zapcore.LevelEnabler
	logger otellog.Logger
	fields []zapcore.Field
}

// NewOTelCore 创建输出到 OTel Logger 的 zapcore.Core
func NewOTelCore(logger otellog.Logger, enab zapcore.LevelEnabler) zapcore.Core {
	return &otelCore{
		LevelEnabler: enab,
		logger:       logger,
	}
}

func (c *otelCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &otelCore{
		LevelEnabler: c.LevelEnabler,
		logger:       c.logger,
		fields:       make([]zapcore.Field, 0, len(c.fields)+len(fields)),
	}
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return clone
}

func (c *otelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *otelCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var rec otellog.Record
	rec.SetTimestamp(ent.Time)
	rec.SetBody(otellog.StringValue(ent.Message))
	rec.SetSeverity(severity(ent.Level))
	rec.SetSeverityText(ent.Level.CapitalString())

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	attrs := make([]otellog.KeyValue, 0, len(enc.Fields)+1)
	if ent.LoggerName != "" {
		attrs = append(attrs, otellog.String("logger", ent.LoggerName))
	}
	for k, v := range enc.Fields {
		attrs = append(attrs, otellog.String(k, fmt.Sprint(v)))
	}
	rec.AddAttributes(attrs...)

	c.logger.Emit(context.Background(), rec)
	return nil
}

func (c *otelCore) Sync() error {
	return nil
}

func severity(l zapcore.Level) otellog.Severity {
	switch l {
	case zapcore.DebugLevel:
		return otellog.SeverityDebug
	case zapcore.InfoLevel:
		return otellog.SeverityInfo
	case zapcore.WarnLevel:
		return otellog.SeverityWarn
	case zapcore.ErrorLevel:
		return otellog.SeverityError
	case zapcore.DPanicLevel, zapcore.PanicLevel:
		return otellog.SeverityFatal1
	case zapcore.FatalLevel:
		return otellog.SeverityFatal4
	default:
		return otellog.SeverityUndefined
	}
}
