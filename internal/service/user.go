package service

import (
	"context"

	v1 "user-records-example/api/user/v1"
	"user-records-example/api/user/v1/userv1connect"
	"user-records-example/internal/biz/model"

	"connectrpc.com/connect"
)

// UserService 实现 Connect 服务
type UserService struct {
	userUseCase model.UserUseCase
}

// 显式接口检查
var _ userv1connect.UserServiceHandler = (*UserService)(nil)

func NewUserService(userUseCase model.UserUseCase) userv1connect.UserServiceHandler {
	return &UserService{
		userUseCase: userUseCase,
	}
}

func (s *UserService) GetUser(ctx context.Context, req *connect.Request[v1.GetUserRequest]) (*connect.Response[v1.User], error) {
	p, err := s.userUseCase.GetProfile(ctx, req.Msg.GetId())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.User{Id: p.ID, Name: p.Name}), nil
}

func (s *UserService) CreateUser(ctx context.Context, req *connect.Request[v1.CreateUserRequest]) (*connect.Response[v1.User], error) {
	p, err := s.userUseCase.CreateProfile(ctx, model.Profile{
		ID:   req.Msg.GetId(),
		Name: req.Msg.Name,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.User{Id: p.ID, Name: p.Name}), nil
}

func (s *UserService) Register(ctx context.Context, req *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.Account], error) {
	a, err := s.userUseCase.Register(ctx, model.Registration{
		Username: req.Msg.Username,
		Email:    req.Msg.Email,
		Password: req.Msg.Password,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.Account{Username: a.Username, Email: a.Email}), nil
}

func (s *UserService) GetAccount(ctx context.Context, req *connect.Request[v1.GetAccountRequest]) (*connect.Response[v1.Account], error) {
	a, err := s.userUseCase.GetAccount(ctx, req.Msg.Username)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.Account{Username: a.Username, Email: a.Email}), nil
}
