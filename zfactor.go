// Package zfactor 天然气压缩因子计算
//
// 由气体相对密度, 压力, 温度及酸气组分计算拟对比参数, 再用指定关联式求得压缩因子 Z.
// 已知拟对比温度与压力时直接求解.
package zfactor

import (
	"zfactor/pseudocritical"
	"zfactor/solver"
	"zfactor/types"

	_ "zfactor/correlation"
)

// Params 计算参数, 指针为空表示未提供
type Params struct {
	SG  *float64 // 气体相对密度
	P   *float64 // 压力 (psig)
	T   *float64 // 温度 (°F)
	H2S *float64 // H2S 摩尔分数
	CO2 *float64 // CO2 摩尔分数
	N2  *float64 // N2 摩尔分数
	Pr  *float64 // 拟对比压力
	Tr  *float64 // 拟对比温度

	PModel types.PModel // 拟临界参数模型, 默认 Piper
	ZModel types.ZModel // 压缩因子关联式, 默认 DAK

	Guess      *float64        // 迭代初值
	Solver     *solver.Options // 求根参数
	SmartGuess *bool           // 是否使用显式模型给出初值, 默认是

	IgnoreConflict bool               // 参数冲突时以直接给定的值为准
	Extra          map[string]float64 // 直接给定的拟临界参数 (Tpc, Ppc, J, K, e_correction)
}

// Result 计算结果
type Result struct {
	Z     float64              // 压缩因子
	Pr    float64              // 拟对比压力
	Tr    float64              // 拟对比温度
	Props pseudocritical.Props // 拟临界参数模型的中间结果
}

// Map 合并为一个键值表
func (r *Result) Map() map[string]float64 {
	m := make(map[string]float64, len(r.Props)+3)
	m["z"] = r.Z
	for k, v := range r.Props {
		m[k] = v
	}
	m["Tr"] = r.Tr
	m["Pr"] = r.Pr
	return m
}

// Calculator 压缩因子计算器
type Calculator struct {
	Solver *solver.Solver
}

// NewCalculator 创建默认计算器
func NewCalculator() *Calculator {
	return &Calculator{Solver: solver.New()}
}

// defaultCalculator 包级函数使用的计算器
var defaultCalculator = NewCalculator()

// Calc 计算压缩因子
func Calc(p Params) (float64, error) { return defaultCalculator.Calc(p) }

// CalcProps 计算压缩因子并返回全部中间结果
func CalcProps(p Params) (*Result, error) { return defaultCalculator.CalcProps(p) }

// Calc 计算压缩因子
func (c *Calculator) Calc(p Params) (float64, error) {
	r, err := c.CalcProps(p)
	if err != nil {
		return 0, err
	}
	return r.Z, nil
}

// CalcProps 计算压缩因子并返回全部中间结果
func (c *Calculator) CalcProps(p Params) (*Result, error) {
	zm := p.ZModel
	if zm == types.ZModelUnset {
		zm = types.DAK
	}
	d, err := zm.Descriptor()
	if err != nil {
		return nil, err
	}
	if err := solver.CheckExplicit(d, p.Guess, p.Solver, p.SmartGuess); err != nil {
		return nil, err
	}
	s := c.Solver
	if s == nil {
		s = solver.New()
	}

	// 拟对比参数已知
	if p.Pr != nil && p.Tr != nil {
		z, err := s.Solve(*p.Pr, *p.Tr, d, p.Guess, p.Solver, p.SmartGuess)
		if err != nil {
			return nil, err
		}
		return &Result{Z: z, Pr: *p.Pr, Tr: *p.Tr, Props: pseudocritical.Props{}}, nil
	}

	pm := p.PModel
	if pm == types.PModelUnset {
		pm = types.Piper
	}
	model, err := pseudocritical.New(pm)
	if err != nil {
		return nil, err
	}
	tr, pr, err := model.Reduce(pseudocritical.Input{
		SG:             p.SG,
		P:              p.P,
		T:              p.T,
		H2S:            p.H2S,
		CO2:            p.CO2,
		N2:             p.N2,
		Tr:             p.Tr,
		Pr:             p.Pr,
		IgnoreConflict: p.IgnoreConflict,
		Extra:          p.Extra,
	})
	if err != nil {
		return nil, err
	}
	z, err := s.Solve(pr, tr, d, p.Guess, p.Solver, p.SmartGuess)
	if err != nil {
		return nil, err
	}
	props := make(pseudocritical.Props, len(model.Props()))
	for k, v := range model.Props() {
		props[k] = v
	}
	return &Result{Z: z, Pr: pr, Tr: tr, Props: props}, nil
}

// Float 取地址, 便于构造 Params
func Float(v float64) *float64 { return &v }

// Bool 取地址, 便于构造 Params
func Bool(v bool) *bool { return &v }
