package model

import "context"

// 就绪状态
const (
	StatusReady     = "Ready"
	StatusUnhealthy = "Unhealthy"
)

// CheckUseCase 检查存储后端是否可用
type CheckUseCase interface {
	Ready(ctx context.Context, req HealthCheckReq) (HealthCheckReply, error)
}

type (
	HealthCheckReq struct{}
	// HealthCheckReply 不可用时 Details 记录出错的组件
	HealthCheckReply struct {
		Status  string            `json:"status"`
		Details map[string]string `json:"details,omitempty"`
	}
)
