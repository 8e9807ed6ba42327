package types

// 单位换算常量定义
const (
	PsiaOffset    = 14.7   // 表压转绝对压力 (psig -> psia)
	RankineOffset = 459.67 // 华氏度转兰氏度 (°F -> °R)
)

// 默认求解参数常量定义
const (
	Tolerance         = 1.48e-8 // 收敛容差
	RelTolerance      = 0.0     // 相对收敛容差
	MaxIterations     = 50      // 单次求根最大迭代次数
	SecantStep        = 1e-4    // 割线法第二个起点的相对偏移
	LowPressureGuess  = 0.9     // Pr 低于 HighPressureBound 时的默认初值
	HighPressureGuess = 2.0     // 高压区默认初值, Z 在该区间近似线性
	HighPressureBound = 15.0    // 高低压初值切换点
)

// SmartGuessModel 用于生成初值的显式模型
const SmartGuessModel = Kareem

// GuessLadder 兜底初值序列
var GuessLadder = [...]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
