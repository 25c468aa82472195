package biz

import (
	"context"
	"fmt"
	"time"

	"user-records-example/internal/biz/model"
	"user-records-example/internal/data"
)

// readyTimeout 单次就绪检查的超时
const readyTimeout = 2 * time.Second

type CheckUseCase struct {
	repo    data.CheckRepo
	timeout time.Duration
}

func NewCheckUseCase(repo data.CheckRepo) (model.CheckUseCase, error) {
	return &CheckUseCase{
		repo:    repo,
		timeout: readyTimeout,
	}, nil
}

// Ready 在超时内探测存储；失败时状态至少为 Unhealthy
func (c *CheckUseCase) Ready(ctx context.Context, req model.HealthCheckReq) (model.HealthCheckReply, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.repo.Ready(ctx, req)
	if err != nil {
		if reply.Status == "" {
			reply.Status = model.StatusUnhealthy
		}
		return reply, fmt.Errorf("readiness check: %w", err)
	}
	return reply, nil
}
