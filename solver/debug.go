package solver

// Attempt 单次求根记录
type Attempt struct {
	Model string  // 模型名称
	Pr    float64 // 拟对比压力
	Tr    float64 // 拟对比温度
	Guess float64 // 初值
	Outcome
}

// Debug 调试接口
type Debug interface {
	IsDebug() bool
	Update(a Attempt)
	Error(err error)
}
