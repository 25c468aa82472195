package data

import (
	"context"

	"user-records-example/internal/biz/model"

	"go.uber.org/zap"
)

type checkRepo struct {
	profiles Store[int64, model.Profile]
	accounts Store[string, model.Account]
	l        *zap.Logger
}

type CheckRepo interface {
	Ready(context.Context, model.HealthCheckReq) (model.HealthCheckReply, error)
}

func NewCheckRepo(profiles Store[int64, model.Profile], accounts Store[string, model.Account],
	l *zap.Logger,
) CheckRepo {
	return &checkRepo{
		profiles: profiles,
		accounts: accounts,
		l:        l,
	}
}

func (c checkRepo) Ready(ctx context.Context, _ model.HealthCheckReq) (model.HealthCheckReply, error) {
	if err := c.profiles.Ping(ctx); err != nil {
		c.l.Warn("Profile store not ready", zap.Error(err))
		return model.HealthCheckReply{
			Status: model.StatusUnhealthy,
			Details: map[string]string{
				"Components": "ProfileStore",
				"Message":    err.Error(),
			},
		}, err
	}
	if err := c.accounts.Ping(ctx); err != nil {
		c.l.Warn("Account store not ready", zap.Error(err))
		return model.HealthCheckReply{
			Status: model.StatusUnhealthy,
			Details: map[string]string{
				"Components": "AccountStore",
				"Message":    err.Error(),
			},
		}, err
	}
	return model.HealthCheckReply{
		Status:  model.StatusReady,
		Details: nil,
	}, nil
}
