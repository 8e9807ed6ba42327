package solver

import (
	"errors"
	"fmt"
	"math"
	"zfactor/types"

	"gonum.org/v1/gonum/diff/fd"
)

// 单次求根失败原因, 求解器据此换下一个初值
var (
	ErrNotConverged = errors.New("solver: root finder did not converge")
	ErrNumerical    = errors.New("solver: numerical error")
)

// Outcome 单次求根结果
type Outcome struct {
	Value      float64 // 根
	Iterations int     // 迭代次数
	Converged  bool    // 是否收敛
	Err        error   // 失败原因
}

// Retryable 失败是否属于数值不收敛, 可以尝试下一个初值
func (o Outcome) Retryable() bool {
	return errors.Is(o.Err, ErrNotConverged) || errors.Is(o.Err, ErrNumerical)
}

// RootFinder 标量求根接口
type RootFinder interface {
	FindRoot(f Func, x0 float64, opt *Options) Outcome
}

// Default 默认求根器, 按 Options.Method 选择割线法或牛顿法
type Default struct{}

// FindRoot 求根
func (Default) FindRoot(f Func, x0 float64, opt *Options) Outcome {
	if opt != nil && opt.Method == MethodNewton {
		return Newton{}.FindRoot(f, x0, opt)
	}
	return Secant{}.FindRoot(f, x0, opt)
}

// Secant 割线法
type Secant struct{}

// FindRoot 割线法求根
func (Secant) FindRoot(f Func, x0 float64, opt *Options) Outcome {
	p0 := x0
	var p1 float64
	if opt != nil && opt.X1 != nil {
		if *opt.X1 == x0 {
			// 与初值重合时换下一个初值
			return Outcome{Value: x0, Err: fmt.Errorf("%w: %w: X1 and x0 must be different", ErrNumerical, types.ErrInvalidParameter)}
		}
		p1 = *opt.X1
	} else {
		p1 = x0 * (1 + types.SecantStep)
		if p1 >= 0 {
			p1 += types.SecantStep
		} else {
			p1 -= types.SecantStep
		}
	}
	q0, q1 := f(p0), f(p1)
	if !finite(q0) || !finite(q1) {
		return Outcome{Value: p0, Err: fmt.Errorf("%w: residual is not finite at starting points %v, %v", ErrNumerical, p0, p1)}
	}
	if math.Abs(q1) < math.Abs(q0) {
		p0, p1, q0, q1 = p1, p0, q1, q0
	}
	n := opt.maxIter()
	for i := 0; i < n; i++ {
		var p float64
		if q1 == q0 {
			// 残差不再变化, 取两点中值
			return Outcome{Value: (p1 + p0) / 2, Iterations: i + 1, Converged: true}
		}
		if math.Abs(q1) > math.Abs(q0) {
			p = (-q0/q1*p1 + p0) / (1 - q0/q1)
		} else {
			p = (-q1/q0*p0 + p1) / (1 - q1/q0)
		}
		if !finite(p) {
			return Outcome{Value: p1, Iterations: i + 1, Err: fmt.Errorf("%w: iterate is not finite at iter=%d", ErrNumerical, i)}
		}
		if opt.close(p, p1) {
			return Outcome{Value: p, Iterations: i + 1, Converged: true}
		}
		p0, q0 = p1, q1
		p1 = p
		if q1 = f(p1); !finite(q1) {
			return Outcome{Value: p1, Iterations: i + 1, Err: fmt.Errorf("%w: residual is not finite at x=%v", ErrNumerical, p1)}
		}
	}
	return Outcome{Value: p1, Iterations: n, Err: fmt.Errorf("%w: failed to converge after %d iterations, value is %v", ErrNotConverged, n, p1)}
}

// Newton 牛顿法, 未提供导数时使用中心差分近似
type Newton struct{}

// FindRoot 牛顿法求根
func (Newton) FindRoot(f Func, x0 float64, opt *Options) Outcome {
	fprime := Func(nil)
	if opt != nil {
		fprime = opt.Fprime
	}
	if fprime == nil {
		fprime = func(x float64) float64 {
			return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central})
		}
	}
	p0 := x0
	n := opt.maxIter()
	for i := 0; i < n; i++ {
		fval := f(p0)
		if !finite(fval) {
			return Outcome{Value: p0, Iterations: i, Err: fmt.Errorf("%w: residual is not finite at x=%v", ErrNumerical, p0)}
		}
		if fval == 0 {
			return Outcome{Value: p0, Iterations: i, Converged: true}
		}
		fder := fprime(p0)
		if fder == 0 || !finite(fder) {
			return Outcome{Value: p0, Iterations: i, Err: fmt.Errorf("%w: derivative is %v at x=%v", ErrNumerical, fder, p0)}
		}
		p := p0 - fval/fder
		if opt.close(p, p0) {
			return Outcome{Value: p, Iterations: i + 1, Converged: true}
		}
		p0 = p
	}
	return Outcome{Value: p0, Iterations: n, Err: fmt.Errorf("%w: failed to converge after %d iterations, value is %v", ErrNotConverged, n, p0)}
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
