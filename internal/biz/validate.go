package biz

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"user-records-example/internal/biz/model"

	"github.com/go-playground/validator/v10"
)

// NewValidator 创建带有 json 字段名和自定义规则的校验器
func NewValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// 与 /users/{key} 的路由使用同一判定，用户名不能被解析为 Profile ID
	if err := v.RegisterValidation("notid", func(fl validator.FieldLevel) bool {
		_, isID := model.ParseProfileKey(fl.Field().String())
		return !isID
	}); err != nil {
		return nil, fmt.Errorf("register notid validation: %w", err)
	}
	return v, nil
}

// validateStruct 校验失败时返回 InvalidUserDataError
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &model.InvalidUserDataError{Message: err.Error(), Err: err}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return &model.InvalidUserDataError{Message: strings.Join(msgs, "; "), Err: err}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "notid":
		return fmt.Sprintf("%s must not be a numeric ID", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
