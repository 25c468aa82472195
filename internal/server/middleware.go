package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"user-records-example/internal/pkg/errresp"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// meterName 指标与 tracer 的 instrumentation 名称
const meterName = "user-records-example"

// metrics 请求相关指标
type metrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	errors   metric.Int64Counter
}

// newMetrics 从全局 MeterProvider 创建指标
func newMetrics() (*metrics, error) {
	meter := otel.GetMeterProvider().Meter(meterName)

	requests, err := meter.Int64Counter(
		"http.server.request.count",
		metric.WithDescription("HTTP 请求总数"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP 请求耗时"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	errorCount, err := meter.Int64Counter(
		"http.server.error.count",
		metric.WithDescription("错误响应总数，按 errorCode 区分"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create error counter: %w", err)
	}

	return &metrics{requests: requests, duration: duration, errors: errorCount}, nil
}

// MonitoringMiddleware 为每个请求创建 span 并记录指标；错误响应按 errorCode 计数
func MonitoringMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	m, err := newMetrics()
	if err != nil {
		logger.Error("Failed to initialize metrics", zap.Error(err))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			tracer := otel.GetTracerProvider().Tracer(meterName)
			ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path)
			defer span.End()

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			req := r.WithContext(ctx)
			next.ServeHTTP(ww, req)

			elapsed := time.Since(start)
			// 路由模板基数低，优先作为指标维度
			route := req.Pattern
			if route == "" {
				route = "unmatched"
			}
			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
				attribute.Int("http.status_code", ww.statusCode),
			}
			span.SetAttributes(attrs...)
			span.SetAttributes(attribute.String("http.user_agent", r.UserAgent()))

			if m != nil {
				m.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
				m.duration.Record(ctx, float64(elapsed.Microseconds())/1000, metric.WithAttributes(attrs...))
			}

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.statusCode),
				zap.Duration("duration", elapsed),
			}

			if ww.statusCode < http.StatusBadRequest {
				span.SetStatus(codes.Ok, "")
				logger.Info("HTTP request completed", fields...)
				return
			}

			errorCode := ww.Header().Get(errresp.HeaderErrorCode)
			if m != nil {
				m.errors.Add(ctx, 1, metric.WithAttributes(append(attrs, attribute.String("error.code", errorCode))...))
			}
			span.SetStatus(codes.Error, http.StatusText(ww.statusCode))
			fields = append(fields, zap.String("handle_time", ww.Header().Get(errresp.HeaderHandleTime)))
			if ww.statusCode >= http.StatusInternalServerError {
				logger.Error("HTTP request failed", fields...)
			} else {
				logger.Warn("HTTP request rejected", fields...)
			}
		})
	}
}

// ConnectMonitoringInterceptor Connect 专用的监控拦截器
func ConnectMonitoringInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	m, err := newMetrics()
	if err != nil {
		logger.Error("Failed to initialize metrics", zap.Error(err))
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			attrs := []attribute.KeyValue{
				attribute.String("rpc.system", "connect_rpc"),
				attribute.String("rpc.method", procedure),
				attribute.String("rpc.connect_rpc.error_code", code),
			}
			if m != nil {
				m.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
				m.duration.Record(ctx, float64(elapsed.Microseconds())/1000, metric.WithAttributes(attrs...))
			}

			if err == nil {
				logger.Info("RPC request completed",
					zap.String("procedure", procedure),
					zap.Duration("duration", elapsed),
				)
				return resp, nil
			}

			if m != nil {
				m.errors.Add(ctx, 1, metric.WithAttributes(attrs...))
			}
			if connect.CodeOf(err) == connect.CodeInternal || connect.CodeOf(err) == connect.CodeUnknown {
				logger.Error("RPC request failed",
					zap.String("procedure", procedure),
					zap.Duration("duration", elapsed),
					zap.Error(err),
				)
			} else {
				logger.Warn("RPC request rejected",
					zap.String("procedure", procedure),
					zap.String("code", code),
					zap.Duration("duration", elapsed),
					zap.Error(err),
				)
			}
			return resp, err
		}
	}
}

// RecoveryMiddleware 捕获处理器中的 panic，按 500 错误响应返回。
// 响应已开始写出时无法再替换，改为中止连接。
func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				// 由 net/http 处理的中止信号
				if err, ok := p.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(p)
				}
				logger.Error("Request panic",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", p),
					zap.Bool("response_started", rw.written),
					zap.ByteString("stack", debug.Stack()),
				)
				if rw.written {
					panic(http.ErrAbortHandler)
				}
				errresp.Write(rw, fmt.Errorf("panic: %v", p))
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// responseWriter 包装 http.ResponseWriter 来捕获状态码
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.statusCode = http.StatusOK
		rw.written = true
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap 供 http.ResponseController 访问底层 writer
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// MiddlewareModule 提供 Fx 模块
var MiddlewareModule = fx.Module("server.middleware",
	fx.Provide(
		func(logger *zap.Logger) func(http.Handler) http.Handler {
			return MonitoringMiddleware(logger)
		},
		ConnectMonitoringInterceptor,
	),
)

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		rw.written = true
		f.Flush()
	}
}
