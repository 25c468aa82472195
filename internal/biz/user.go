package biz

import (
	"context"
	"errors"
	"fmt"

	"user-records-example/internal/biz/model"
	conf "user-records-example/internal/conf/v1"
	"user-records-example/internal/data"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// 主键冲突时的提示
const (
	msgProfileExists = "User with this ID already exists"
	msgAccountExists = "User with this username already exists."
)

type UserUseCase struct {
	profiles data.Store[int64, model.Profile]
	accounts data.Store[string, model.Account]
	validate *validator.Validate
	hashCost int
	l        *zap.Logger
}

func NewUserUseCase(
	profiles data.Store[int64, model.Profile],
	accounts data.Store[string, model.Account],
	cfg *conf.Bootstrap,
	logger *zap.Logger,
) (model.UserUseCase, error) {
	hashCost := bcrypt.DefaultCost
	if cfg.Security != nil && cfg.Security.PasswordHashCost != 0 {
		hashCost = int(cfg.Security.PasswordHashCost)
		if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("password hash cost %d out of range [%d, %d]", hashCost, bcrypt.MinCost, bcrypt.MaxCost)
		}
	}

	validate, err := NewValidator()
	if err != nil {
		return nil, err
	}

	return &UserUseCase{
		profiles: profiles,
		accounts: accounts,
		validate: validate,
		hashCost: hashCost,
		l:        logger,
	}, nil
}

func (uc *UserUseCase) GetProfile(ctx context.Context, id int64) (*model.Profile, error) {
	p, err := uc.profiles.Get(ctx, id)
	if errors.Is(err, model.ErrRecordNotFound) {
		return nil, model.NewUserNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", id, err)
	}
	return &p, nil
}

func (uc *UserUseCase) CreateProfile(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	if err := validateStruct(uc.validate, profile); err != nil {
		return nil, err
	}

	p, err := uc.profiles.Insert(ctx, profile.ID, profile)
	if errors.Is(err, model.ErrUserAlreadyExists) {
		return nil, &model.InvalidUserDataError{Message: msgProfileExists, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("create profile %d: %w", profile.ID, err)
	}

	uc.l.Info("Profile created", zap.Int64("id", p.ID))
	return &p, nil
}

// Register 校验注册信息并保存密码摘要，返回的 Account 不含明文密码
func (uc *UserUseCase) Register(ctx context.Context, reg model.Registration) (*model.Account, error) {
	if err := validateStruct(uc.validate, reg); err != nil {
		return nil, err
	}

	// 先检查一次，避免为重复用户名计算 bcrypt
	if _, err := uc.accounts.Get(ctx, reg.Username); err == nil {
		return nil, &model.InvalidUserDataError{Message: msgAccountExists, Err: model.ErrUserAlreadyExists}
	} else if !errors.Is(err, model.ErrRecordNotFound) {
		return nil, fmt.Errorf("get account %s: %w", reg.Username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account, err := uc.accounts.Insert(ctx, reg.Username, model.Account{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: string(hash),
	})
	if errors.Is(err, model.ErrUserAlreadyExists) {
		return nil, &model.InvalidUserDataError{Message: msgAccountExists, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("create account %s: %w", reg.Username, err)
	}

	uc.l.Info("Account registered", zap.String("username", account.Username))
	return &account, nil
}

func (uc *UserUseCase) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	a, err := uc.accounts.Get(ctx, username)
	if errors.Is(err, model.ErrRecordNotFound) {
		return nil, model.NewUserNotFound(username)
	}
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", username, err)
	}
	return &a, nil
}
