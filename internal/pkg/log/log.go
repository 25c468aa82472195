// Package log 提供基于 zap 的日志组件，并可将日志同步输出到 OpenTelemetry 日志管道。
package log

import (
	"fmt"
	"strings"

	confv1 "user-records-example/internal/conf/v1"

	"go.opentelemetry.io/otel/log/global"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// instrumentationName OTel 日志的 instrumentation scope
const instrumentationName = "user-records-example"

// Module 提供 Fx 模块
var Module = fx.Module("log",
	fx.Provide(NewLogger),
)

// FxEventLogger 让 Fx 自身的事件也使用 zap 输出
func FxEventLogger(logger *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: logger.Named("fx")}
}

// NewLogger 根据配置创建 zap.Logger
func NewLogger(lc fx.Lifecycle, conf *confv1.Bootstrap) (*zap.Logger, error) {
	logger, err := Build(conf.Log, conf.Trace != nil && conf.Trace.Enabled)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		// stdout/stderr 的 Sync 在部分平台会返回错误，忽略
		_ = logger.Sync()
	}))

	return logger, nil
}

// Build 创建 logger；withOTel 为 true 时日志同时写入全局 LoggerProvider
func Build(cfg *confv1.Log, withOTel bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	format := "json"
	if cfg != nil {
		if cfg.Level != "" {
			if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
			}
		}
		if cfg.Format != "" {
			format = cfg.Format
		}
	}

	var zc zap.Config
	switch format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	var opts []zap.Option
	if withOTel {
		otelCore := NewOTelCore(global.GetLoggerProvider().Logger(instrumentationName), level)
		opts = append(opts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelCore)
		}))
	}

	logger, err := zc.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
