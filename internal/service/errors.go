package service

import (
	"errors"
	"time"

	"user-records-example/internal/biz/model"
	"user-records-example/internal/pkg/errresp"

	"connectrpc.com/connect"
)

// toConnectError 复用 errresp 的转换规则生成 connect.Error
func toConnectError(err error) error {
	start := time.Now()
	resp := errresp.Translate(err)

	code := connect.CodeInternal
	var (
		notFound *model.UserNotFoundError
		invalid  *model.InvalidUserDataError
	)
	switch {
	case errors.As(err, &notFound):
		code = connect.CodeNotFound
	case errors.As(err, &invalid):
		code = connect.CodeInvalidArgument
		if errors.Is(err, model.ErrUserAlreadyExists) {
			code = connect.CodeAlreadyExists
		}
	}

	cerr := connect.NewError(code, errors.New(resp.Message))
	if resp.ErrorCode != "" {
		cerr.Meta().Set(errresp.HeaderErrorCode, resp.ErrorCode)
	}
	cerr.Meta().Set(errresp.HeaderHandleTime, errresp.FormatElapsed(time.Since(start)))
	return cerr
}
