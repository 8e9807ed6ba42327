package solver

import (
	"math"
	"zfactor/types"
)

// Method 求根方法
type Method int

// 求根方法常量定义
const (
	MethodSecant Method = iota // 割线法, 不需要导数
	MethodNewton               // 牛顿法, 导数为空时使用中心差分
)

// Func 标量函数
type Func func(x float64) float64

// Options 求根参数, 零值使用默认值, 整体原样传递给求根器
type Options struct {
	MaxIter int      // 最大迭代次数
	Tol     float64  // 绝对容差
	RTol    float64  // 相对容差
	X1      *float64 // 割线法第二个起点
	Fprime  Func     // 导数
	Method  Method   // 求根方法
}

// maxIter 得到最大迭代次数
func (opt *Options) maxIter() int {
	if opt == nil || opt.MaxIter <= 0 {
		return types.MaxIterations
	}
	return opt.MaxIter
}

// tol 得到绝对容差
func (opt *Options) tol() float64 {
	if opt == nil || opt.Tol <= 0 {
		return types.Tolerance
	}
	return opt.Tol
}

// rtol 得到相对容差
func (opt *Options) rtol() float64 {
	if opt == nil || opt.RTol <= 0 {
		return types.RelTolerance
	}
	return opt.RTol
}

// close 判断两次迭代是否足够接近
func (opt *Options) close(p, q float64) bool {
	return math.Abs(p-q) <= opt.tol()+opt.rtol()*math.Abs(q)
}
