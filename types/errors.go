package types

import "errors"

// 错误类型定义
var (
	// ErrUnknownModel 模型名称不在注册表中
	ErrUnknownModel = errors.New("zfactor: unknown model")
	// ErrUnsupportedParameter 参数对所选模型无意义
	ErrUnsupportedParameter = errors.New("zfactor: unsupported parameter")
	// ErrInvalidParameter 参数值不满足前置条件
	ErrInvalidParameter = errors.New("zfactor: invalid parameter")
	// ErrMissingParameter 缺少计算所需的输入
	ErrMissingParameter = errors.New("zfactor: missing parameter")
	// ErrConflict 输入值与由其他输入计算出的值冲突
	ErrConflict = errors.New("zfactor: conflicting parameters")
	// ErrConvergence 所有初值均未收敛
	ErrConvergence = errors.New("zfactor: failed to converge")
)
