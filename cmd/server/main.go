package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"user-records-example/internal/biz"
	confv1 "user-records-example/internal/conf/v1"
	"user-records-example/internal/data"
	"user-records-example/internal/pkg/config"
	logger "user-records-example/internal/pkg/log"
	"user-records-example/internal/pkg/otel"
	"user-records-example/internal/pkg/registry"
	"user-records-example/internal/server"
	"user-records-example/internal/service"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var serviceName = "user-records"

func main() {
	flag.Parse()

	fxApp := NewApp()

	// 启动应用
	if err := fxApp.Start(context.Background()); err != nil {
		log.Printf("Failed to start app: %v\n", err)
		os.Exit(1)
	}

	// 等待中断信号
	<-fxApp.Done()

	// 优雅关闭
	if err := fxApp.Stop(context.Background()); err != nil {
		log.Printf("Failed to stop app gracefully: %v\n", err)
		os.Exit(1)
	}
}

// NewApp 创建并配置 FX 应用
func NewApp() *fx.App {
	return fx.New(append(appOptions(), fx.WithLogger(logger.FxEventLogger))...)
}

// appOptions 应用的依赖图，不含 Fx 事件日志
func appOptions() []fx.Option {
	return []fx.Option{
		// 提供基础模块
		config.Module,
		logger.Module,
		registry.Module,

		// 注入业务模块（按依赖顺序）
		data.Module,
		biz.Module,
		service.Module,
		server.MiddlewareModule,
		server.Module,

		fx.Supply(serviceName),

		fx.Invoke(
			// 验证配置完整性
			func(conf *confv1.Bootstrap) error {
				return config.ValidateConfig(conf)
			},

			// 注册应用到注册中心
			func(_ *registry.ConsulRegistry) {},

			runServer,
		),
	}
}

// runServer 初始化 OTel 并在生命周期内运行 HTTP 服务
func runServer(lc fx.Lifecycle, conf *confv1.Bootstrap, logger *zap.Logger, srv *http.Server) error {
	otelShutdown, err := otel.SetupOTelSDK(context.Background(), serviceName, conf.Trace, logger)
	if err != nil {
		return fmt.Errorf("failed to setup OTel SDK: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// 同步监听，端口占用时启动失败
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			logger.Info("Listening", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// 先停止接收请求，再刷新遥测数据
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Failed to shutdown server gracefully", zap.Error(err))
			}
			if otelShutdown == nil {
				return nil
			}
			if err := otelShutdown(ctx); err != nil {
				logger.Error("Failed to shutdown OTel", zap.Error(err))
			}
			return nil
		},
	})
	return nil
}
