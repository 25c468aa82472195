// Package errresp 把领域错误转换为统一结构的 JSON 错误响应。
//
// 转换规则：
//
//	UserNotFoundError    -> 404, errorCode USER_NOT_FOUND
//	InvalidUserDataError -> 400, errorCode INVALID_USER_DATA
//	*HTTPError           -> 原样状态码，无 errorCode
//	其他                  -> 500, 无 errorCode
//
// 所有错误响应都带有 X-ErrorHandleTime 头，值为构造响应耗时的秒数。
package errresp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"user-records-example/internal/biz/model"
)

const (
	// HeaderHandleTime 错误响应构造耗时（秒）
	HeaderHandleTime = "X-ErrorHandleTime"
	// HeaderErrorCode 与响应体中的 errorCode 相同，便于中间件统计
	HeaderErrorCode = "X-Error-Code"
)

const msgInternal = "Internal Server Error"

// Response 错误响应体
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	ErrorCode  string `json:"errorCode,omitempty"`
}

// HTTPError 传输层错误，例如请求体格式错误或路由不存在
type HTTPError struct {
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Detail
}

func NewHTTPError(statusCode int, detail string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Detail: detail}
}

// Translate 把错误映射为响应描述，不产生任何副作用
func Translate(err error) Response {
	var (
		notFound *model.UserNotFoundError
		invalid  *model.InvalidUserDataError
		httpErr  *HTTPError
	)
	switch {
	case errors.As(err, &notFound):
		return Response{
			StatusCode: http.StatusNotFound,
			Message:    notFound.Error(),
			ErrorCode:  model.CodeUserNotFound,
		}
	case errors.As(err, &invalid):
		return Response{
			StatusCode: http.StatusBadRequest,
			Message:    invalid.Message,
			ErrorCode:  model.CodeInvalidUserData,
		}
	case errors.As(err, &httpErr) && httpErr.StatusCode >= 100 && httpErr.StatusCode <= 999:
		return Response{
			StatusCode: httpErr.StatusCode,
			Message:    httpErr.Detail,
		}
	default:
		return Response{
			StatusCode: http.StatusInternalServerError,
			Message:    msgInternal,
		}
	}
}

// FormatElapsed 把耗时格式化为秒数字符串
func FormatElapsed(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// Write 转换错误并写出 JSON 响应，返回写出的响应体
func Write(w http.ResponseWriter, err error) Response {
	start := time.Now()

	resp := Translate(err)
	body, mErr := json.Marshal(resp)
	if mErr != nil {
		resp = Response{StatusCode: http.StatusInternalServerError, Message: msgInternal}
		body = []byte(`{"statusCode":500,"message":"Internal Server Error"}`)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	if resp.ErrorCode != "" {
		h.Set(HeaderErrorCode, resp.ErrorCode)
	}
	h.Set(HeaderHandleTime, FormatElapsed(time.Since(start)))
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(body)

	return resp
}
