// Package quickstart 压缩因子图版快速生成
//
// 对一组固定的拟对比温度扫描拟对比压力, 计算每个网格点的 Z, 并绘制 Z-Pr 曲线.
package quickstart

import (
	"fmt"
	"math"
	"sort"
	"zfactor"
	"zfactor/solver"
	"zfactor/types"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/vg"
)

// Trs 扫描的拟对比温度
var Trs = [...]float64{1.05, 1.1, 1.2, 1.3, 1.4, 1.5, 1.6, 1.7, 1.8, 1.9, 2.0, 2.2, 2.4, 2.6, 2.8, 3.0}

// Options 快速生成参数
type Options struct {
	ZModel              types.ZModel   // 压缩因子关联式
	PrMin, PrMax        float64        // 拟对比压力范围
	Width, Height       vg.Length      // 图片尺寸
	TitleBold           string         // 标题前半部分
	TitlePlain          string         // 标题后半部分
	DisableTrAnnotation bool           // 不标注 Tr
	Calc                zfactor.Params // 透传给 zfactor.Calc 的参数, Pr, Tr, ZModel 会被覆盖
}

// DefaultOptions 默认参数
func DefaultOptions() Options {
	return Options{
		ZModel: types.DAK,
		PrMin:  0.2,
		PrMax:  30,
		Width:  8 * vg.Inch,
		Height: 5 * vg.Inch,
	}
}

// Curve 单个 Tr 下的曲线
type Curve struct {
	Pr []float64
	Z  []float64
}

// Min 曲线最低点
func (c Curve) Min() (pr, z float64) {
	if len(c.Z) == 0 {
		return math.NaN(), math.NaN()
	}
	i := floats.MinIdx(c.Z)
	return c.Pr[i], c.Z[i]
}

// Results 按 Tr 索引的计算结果
type Results map[float64]Curve

// Keys 排序后的 Tr
func (r Results) Keys() []float64 {
	keys := make([]float64, 0, len(r))
	for tr := range r {
		keys = append(keys, tr)
	}
	sort.Float64s(keys)
	return keys
}

// PrGrid 生成拟对比压力网格, 步长 0.1, 保留一位小数
func PrGrid(prmin, prmax float64) ([]float64, error) {
	if !(prmin > 0) {
		return nil, fmt.Errorf("%w: value of prmin must be greater than 0, got %v. Try prmin=0.1", types.ErrInvalidParameter, prmin)
	}
	if !(prmax >= prmin) {
		return nil, fmt.Errorf("%w: prmax=%v must not be less than prmin=%v", types.ErrInvalidParameter, prmax, prmin)
	}
	n := int(math.Round((prmax-prmin)*10)) + 1
	if n == 1 {
		return []float64{math.Round(prmin*10) / 10}, nil
	}
	grid := floats.Span(make([]float64, n), prmin, prmax)
	for i, v := range grid {
		grid[i] = math.Round(v*10) / 10
	}
	return grid, nil
}

// Compute 计算全部网格点
func Compute(opt Options) (Results, error) {
	prs, err := PrGrid(opt.PrMin, opt.PrMax)
	if err != nil {
		return nil, err
	}
	zm := opt.ZModel
	if zm == types.ZModelUnset {
		zm = types.DAK
	}
	d, err := zm.Descriptor()
	if err != nil {
		return nil, err
	}
	params := opt.Calc
	params.ZModel = zm
	if d.Kind == types.KindImplicit && params.Solver == nil {
		params.Solver = &solver.Options{MaxIter: types.MaxIterations}
	}
	results := make(Results, len(Trs))
	for _, tr := range Trs {
		curve := Curve{Pr: make([]float64, 0, len(prs)), Z: make([]float64, 0, len(prs))}
		for _, pr := range prs {
			params.Pr, params.Tr = zfactor.Float(pr), zfactor.Float(tr)
			z, err := zfactor.Calc(params)
			if err != nil {
				return nil, fmt.Errorf("Tr=%v Pr=%v: %w", tr, pr, err)
			}
			curve.Pr = append(curve.Pr, pr)
			curve.Z = append(curve.Z, z)
		}
		results[tr] = curve
	}
	return results, nil
}
