package biz

import "go.uber.org/fx"

// Module 提供用例层
var Module = fx.Module("biz",
	fx.Provide(
		NewUserUseCase,
		NewCheckUseCase,
	),
)
