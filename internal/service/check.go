package service

import (
	"context"

	v1 "user-records-example/api/check/v1"
	"user-records-example/api/check/v1/checkv1connect"
	"user-records-example/internal/biz/model"

	"connectrpc.com/connect"
)

var _ checkv1connect.CheckServiceHandler = (*CheckService)(nil)

// healthMetaPrefix 不可用时组件详情写入的元数据前缀
const healthMetaPrefix = "X-Health-"

type CheckService struct {
	uc model.CheckUseCase
}

func NewCheckService(uc model.CheckUseCase) checkv1connect.CheckServiceHandler {
	return &CheckService{
		uc: uc,
	}
}

func (c *CheckService) Ready(ctx context.Context, _ *connect.Request[v1.ReadyCheckReq]) (*connect.Response[v1.ReadyCheckReply], error) {
	reply, err := c.uc.Ready(ctx, model.HealthCheckReq{})
	if err != nil {
		cerr := connect.NewError(connect.CodeUnavailable, err)
		for k, v := range reply.Details {
			cerr.Meta().Set(healthMetaPrefix+k, v)
		}
		return nil, cerr
	}
	return connect.NewResponse(&v1.ReadyCheckReply{
		Status:  reply.Status,
		Details: reply.Details,
	}), nil
}
