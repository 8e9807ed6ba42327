// Package solver 压缩因子求解, 负责初值构造与隐式模型的迭代求根
package solver

import (
	"errors"
	"fmt"
	"zfactor/types"

	_ "zfactor/correlation"
)

// ConvergenceError 所有初值均未收敛
type ConvergenceError struct {
	Model   string    // 模型名称
	Pr, Tr  float64   // 拟对比参数
	Guesses []float64 // 已尝试的初值
	Last    error     // 最后一次失败原因
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v: model=%s Pr=%v Tr=%v after %d guesses: %v",
		types.ErrConvergence, e.Model, e.Pr, e.Tr, len(e.Guesses), e.Last)
}

// Is 匹配 types.ErrConvergence
func (e *ConvergenceError) Is(target error) bool { return target == types.ErrConvergence }

// Unwrap 最后一次失败原因
func (e *ConvergenceError) Unwrap() error { return e.Last }

// Solver 压缩因子求解器
type Solver struct {
	Finder RootFinder // 求根器
	Debug  Debug      // 调试记录, 可为空
}

// New 创建默认求解器
func New() *Solver {
	return &Solver{Finder: Default{}}
}

// Solve 求解压缩因子
//
//	显式模型直接计算, guess, opt, smart 必须为空
//	隐式模型依次尝试初值序列, 返回第一个收敛的根
func (s *Solver) Solve(pr, tr float64, d types.Descriptor, guess *float64, opt *Options, smart *bool) (float64, error) {
	if d.Func == nil {
		return 0, fmt.Errorf("%w: model %q has no correlation", types.ErrUnknownModel, d.Name)
	}
	if d.Kind == types.KindExplicit {
		if err := CheckExplicit(d, guess, opt, smart); err != nil {
			return 0, err
		}
		return d.Func(0, pr, tr), nil
	}
	useSmart := true
	if smart != nil {
		useSmart = *smart
	}
	finder := s.Finder
	if finder == nil {
		finder = Default{}
	}
	residual := func(z float64) float64 { return d.Func(z, pr, tr) }
	guesses := BuildGuesses(guess, pr, tr, useSmart)
	var last error
	for _, g := range guesses {
		out := finder.FindRoot(residual, g, opt)
		s.update(Attempt{Model: d.Name, Pr: pr, Tr: tr, Guess: g, Outcome: out})
		if out.Converged {
			return out.Value, nil
		}
		if out.Err == nil {
			out.Err = ErrNotConverged
		}
		if !out.Retryable() {
			return 0, out.Err
		}
		last = out.Err
	}
	err := &ConvergenceError{Model: d.Name, Pr: pr, Tr: tr, Guesses: guesses, Last: last}
	if s.Debug != nil && s.Debug.IsDebug() {
		s.Debug.Error(err)
	}
	return 0, err
}

// update 记录求根过程
func (s *Solver) update(a Attempt) {
	if s.Debug != nil && s.Debug.IsDebug() {
		s.Debug.Update(a)
	}
}

// CheckExplicit 显式模型不接受迭代参数
func CheckExplicit(d types.Descriptor, guess *float64, opt *Options, smart *bool) error {
	if d.Kind != types.KindExplicit {
		return nil
	}
	var name string
	switch {
	case guess != nil:
		name = "guess"
	case opt != nil:
		name = "solver options"
	case smart != nil:
		name = "smart guess"
	default:
		return nil
	}
	return fmt.Errorf("%w: zmodel=%q got an unexpected argument %q", types.ErrUnsupportedParameter, d.Name, name)
}

// IsConvergence 判断是否为不收敛错误
func IsConvergence(err error) bool {
	var ce *ConvergenceError
	return errors.As(err, &ce)
}
