package server

import (
	"context"
	"net/http"
	"time"

	"user-records-example/api/check/v1/checkv1connect"
	"user-records-example/api/user/v1/userv1connect"
	conf "user-records-example/internal/conf/v1"

	"connectrpc.com/connect"
	connectcors "connectrpc.com/cors"
	"connectrpc.com/otelconnect"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

var Module = fx.Module("server",
	fx.Provide(
		NewUserHandler,
		NewHTTPServer,
	),
)

// 未配置时的超时
const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second
)

// NewHandler 组装 REST 路由、Connect 服务和中间件
func NewHandler(
	userHandler *UserHandler,
	userService userv1connect.UserServiceHandler,
	checkService checkv1connect.CheckServiceHandler,
	logger *zap.Logger,
	monitoringMiddleware func(http.Handler) http.Handler,
	connectInterceptor connect.UnaryInterceptorFunc,
) http.Handler {
	otelInterceptor, err := otelconnect.NewInterceptor(
		otelconnect.WithoutServerPeerAttributes(),
	)
	if err != nil {
		logger.Fatal("failed to create otel interceptor", zap.Error(err))
	}
	interceptors := connect.WithInterceptors(otelInterceptor, connectInterceptor)

	mux := http.NewServeMux()
	mux.Handle(userv1connect.NewUserServiceHandler(userService, interceptors))
	mux.Handle(checkv1connect.NewCheckServiceHandler(checkService, interceptors))
	userHandler.Register(mux)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: append(connectcors.AllowedMethods(), http.MethodOptions),
		AllowedHeaders: append(connectcors.AllowedHeaders(), "Content-Type"),
		ExposedHeaders: append(connectcors.ExposedHeaders(),
			"X-ErrorHandleTime",
			"X-Error-Code",
		),
		MaxAge:           7200,
		AllowCredentials: false,
	})

	// 处理器链：监控 -> CORS -> panic 恢复 -> 路由
	return monitoringMiddleware(corsHandler.Handler(RecoveryMiddleware(logger)(mux)))
}

func NewHTTPServer(
	lc fx.Lifecycle,
	cfg *conf.Bootstrap,
	userHandler *UserHandler,
	userService userv1connect.UserServiceHandler,
	checkService checkv1connect.CheckServiceHandler,
	logger *zap.Logger,
	monitoringMiddleware func(http.Handler) http.Handler,
	connectInterceptor connect.UnaryInterceptorFunc,
) *http.Server {
	handler := NewHandler(userHandler, userService, checkService, logger, monitoringMiddleware, connectInterceptor)
	httpCfg := cfg.Server.Http

	server := &http.Server{
		Addr:         httpCfg.Addr,
		Handler:      h2c.NewHandler(handler, &http2.Server{}),
		ReadTimeout:  secondsOr(httpCfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout: secondsOr(httpCfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:  secondsOr(httpCfg.IdleTimeout, defaultIdleTimeout),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP server starting", zap.String("addr", httpCfg.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("HTTP server shutting down...")
			return server.Shutdown(ctx)
		},
	})

	return server
}

func secondsOr(seconds int32, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
