package solver

import (
	"errors"
	"math"
	"testing"
	"zfactor/types"
)

func TestSecant(t *testing.T) {
	out := Secant{}.FindRoot(func(x float64) float64 { return x*x - 2 }, 1, nil)
	if !out.Converged {
		t.Fatalf("未收敛: %v", out.Err)
	}
	if math.Abs(out.Value-math.Sqrt2) > 1e-8 {
		t.Errorf("根不正确: %v", out.Value)
	}
	if out.Iterations == 0 || out.Iterations > types.MaxIterations {
		t.Errorf("迭代次数异常: %d", out.Iterations)
	}
}

func TestSecantX1(t *testing.T) {
	x1 := 2.0
	out := Secant{}.FindRoot(func(x float64) float64 { return x*x - 2 }, 1, &Options{X1: &x1})
	if !out.Converged || math.Abs(out.Value-math.Sqrt2) > 1e-8 {
		t.Errorf("求根失败: %+v", out)
	}
	x1 = 1
	out = Secant{}.FindRoot(func(x float64) float64 { return x*x - 2 }, 1, &Options{X1: &x1})
	if !errors.Is(out.Err, types.ErrInvalidParameter) || !out.Retryable() || out.Converged {
		t.Errorf("X1 与 x0 相同应为可重试的参数错误: %v", out.Err)
	}
}

func TestSecantNotConverged(t *testing.T) {
	// 无实根
	out := Secant{}.FindRoot(func(x float64) float64 { return x*x + 1 }, 3, &Options{MaxIter: 5})
	if out.Converged {
		t.Fatalf("不应收敛: %v", out.Value)
	}
	if !out.Retryable() {
		t.Errorf("失败应可重试: %v", out.Err)
	}
}

func TestSecantNaN(t *testing.T) {
	out := Secant{}.FindRoot(func(x float64) float64 { return math.Log(x) }, -1, nil)
	if !errors.Is(out.Err, ErrNumerical) {
		t.Errorf("期望数值错误, 实际 %v", out.Err)
	}
}

func TestNewton(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }
	out := Newton{}.FindRoot(f, 1, &Options{Method: MethodNewton})
	if !out.Converged || math.Abs(f(out.Value)) > 1e-9 {
		t.Errorf("差分牛顿法失败: %+v", out)
	}
	out = Default{}.FindRoot(f, 1, &Options{Method: MethodNewton, Fprime: func(x float64) float64 { return -math.Sin(x) - 1 }})
	if !out.Converged || math.Abs(f(out.Value)) > 1e-9 {
		t.Errorf("解析导数牛顿法失败: %+v", out)
	}
	out = Newton{}.FindRoot(func(x float64) float64 { return 1 }, 1, &Options{Fprime: func(float64) float64 { return 0 }})
	if !errors.Is(out.Err, ErrNumerical) {
		t.Errorf("零导数应为数值错误, 实际 %v", out.Err)
	}
}

func TestNewtonSolve(t *testing.T) {
	z, err := New().Solve(1.5, 1.5, lookup(t, "DAK"), nil, &Options{Method: MethodNewton}, nil)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if math.Abs(z-0.859314380561347) > 1e-6 {
		t.Errorf("Z 不正确: %v", z)
	}
}
