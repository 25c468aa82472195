// Package registry 负责把服务注册到 Consul。
package registry

import (
	"context"
	"fmt"
	"net"
	"strconv"

	confv1 "user-records-example/internal/conf/v1"

	"github.com/hashicorp/consul/api"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("registry",
	fx.Provide(NewConsulRegistry),
)

// agent 是 Consul Agent 中注册相关的子集
type agent interface {
	ServiceRegister(service *api.AgentServiceRegistration) error
	ServiceDeregister(serviceID string) error
}

// ConsulRegistry 在应用启动时注册服务，停止时注销
type ConsulRegistry struct {
	agent        agent
	registration *api.AgentServiceRegistration
	logger       *zap.Logger
}

// NewConsulRegistry 创建注册器；未启用 Consul 时返回空实现
func NewConsulRegistry(lc fx.Lifecycle, cfg *confv1.Bootstrap, serviceName string, logger *zap.Logger) (*ConsulRegistry, error) {
	r := &ConsulRegistry{logger: logger}
	if cfg.Registry == nil || cfg.Registry.Consul == nil || !cfg.Registry.Consul.Enabled {
		return r, nil
	}
	consulCfg := cfg.Registry.Consul

	client, err := api.NewClient(&api.Config{
		Address: consulCfg.Address,
		Scheme:  consulCfg.Scheme,
		Token:   consulCfg.Token,
	})
	if err != nil {
		return nil, fmt.Errorf("create consul client failed: %w", err)
	}

	registration, err := NewRegistration(serviceName, consulCfg.ServiceAddress, cfg.Server.Http.Addr)
	if err != nil {
		return nil, err
	}

	r.agent = client.Agent()
	r.registration = registration

	lc.Append(fx.Hook{
		OnStart: r.Register,
		OnStop:  r.Deregister,
	})

	return r, nil
}

// NewRegistration 根据 HTTP 监听地址构造 Consul 注册信息，健康检查指向 /healthz
func NewRegistration(serviceName, serviceAddress, listenAddr string) (*api.AgentServiceRegistration, error) {
	host, portStr, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return nil, fmt.Errorf("parse listen address %q: %w", listenAddr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("parse listen port %q: %w", portStr, err)
	}
	if serviceAddress == "" {
		serviceAddress = host
	}
	if serviceAddress == "" {
		serviceAddress = "127.0.0.1"
	}

	return &api.AgentServiceRegistration{
		ID:      fmt.Sprintf("%s-%s-%d", serviceName, serviceAddress, port),
		Name:    serviceName,
		Address: serviceAddress,
		Port:    port,
		Tags:    []string{"http", "connect"},
		Check: &api.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s/healthz", net.JoinHostPort(serviceAddress, portStr)),
			Interval:                       "10s",
			Timeout:                        "3s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}, nil
}

func (r *ConsulRegistry) Register(_ context.Context) error {
	if r.agent == nil {
		return nil
	}
	if err := r.agent.ServiceRegister(r.registration); err != nil {
		return fmt.Errorf("register service to consul failed: %w", err)
	}
	r.logger.Info("Service registered to consul",
		zap.String("id", r.registration.ID),
		zap.String("name", r.registration.Name),
	)
	return nil
}

func (r *ConsulRegistry) Deregister(_ context.Context) error {
	if r.agent == nil {
		return nil
	}
	if err := r.agent.ServiceDeregister(r.registration.ID); err != nil {
		r.logger.Error("Failed to deregister service from consul", zap.Error(err))
		return err
	}
	r.logger.Info("Service deregistered from consul", zap.String("id", r.registration.ID))
	return nil
}
