package quickstart

import (
	"fmt"
	"image/color"
	"strconv"
	"zfactor/types"

	"golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// 默认标题
const (
	DefaultTitleBold  = "Gas Compressibility Factor - Z"
	DefaultTitlePlain = ", computed with zfactor"
)

// Run 计算并绘图
func Run(opt Options) (Results, *plot.Plot, error) {
	results, err := Compute(opt)
	if err != nil {
		return nil, nil, err
	}
	p, err := Plot(results, opt)
	if err != nil {
		return nil, nil, err
	}
	return results, p, nil
}

// Plot 绘制 Z-Pr 曲线, 每个 Tr 一条
func Plot(results Results, opt Options) (*plot.Plot, error) {
	zm := opt.ZModel
	if zm == types.ZModelUnset {
		zm = types.DAK
	}
	p := plot.New()
	bold, plain := opt.TitleBold, opt.TitlePlain
	if bold == "" {
		bold = DefaultTitleBold
	}
	if plain == "" {
		plain = DefaultTitlePlain
	}
	// 标题只有一种字体样式, 整体加粗
	p.Title.Text = bold + plain
	p.Title.TextStyle.Font.Weight = font.WeightBold
	p.X.Label.Text = "Pseudo-Reduced Pressure, Pr"
	p.Y.Label.Text = "Compressibility Factor, Z"
	p.Add(plotter.NewGrid())

	for i, tr := range results.Keys() {
		curve := results[tr]
		xys := make(plotter.XYs, len(curve.Pr))
		for j := range curve.Pr {
			xys[j].X, xys[j].Y = curve.Pr[j], curve.Z[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		c := plotutil.Color(i)
		line.LineStyle.Color = c
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		if opt.DisableTrAnnotation || len(curve.Z) == 0 {
			continue
		}
		// 在曲线最低点处标注 Tr
		label := strconv.FormatFloat(tr, 'g', -1, 64)
		if i == 0 {
			label = "Tr = " + label
		}
		pr, z := curve.Min()
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: pr, Y: z}},
			Labels: []string{label},
		})
		if err != nil {
			return nil, err
		}
		labels.TextStyle[0].Color = c
		labels.Offset = vg.Point{X: -vg.Points(6), Y: -vg.Points(10)}
		p.Add(labels)
	}
	// X 轴范围由网格决定, 不随标注扩展
	if opt.PrMax > opt.PrMin {
		p.X.Min, p.X.Max = opt.PrMin, opt.PrMax
	}

	p.Legend.Top = true
	p.Legend.TextStyle.Color = color.Black
	p.Legend.Add(fmt.Sprintf("zmodel = '%s'", zm))
	p.Legend.Add("Tr = Pseudo-Reduced Temperature")
	return p, nil
}

// Save 保存图片, 格式由文件扩展名决定
func Save(p *plot.Plot, opt Options, file string) error {
	w, h := opt.Width, opt.Height
	if w <= 0 {
		w = 8 * vg.Inch
	}
	if h <= 0 {
		h = 5 * vg.Inch
	}
	return p.Save(w, h, file)
}
