package debug

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	Record
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	entries := c.Snapshot()
	// 迭代次数
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "迭代次数",
			Subtitle: "每次求根的迭代次数",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	// 初值与结果
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "初值与结果",
			Subtitle: "收敛的根随初值分布",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:  "value",
			Name:  "guess",
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Z",
			Scale: opts.Bool(true),
		}),
	)
	// 处理数据
	{
		x := make([]string, len(entries))
		ok := make([]opts.BarData, len(entries))
		fail := make([]opts.BarData, len(entries))
		converged := make([]opts.ScatterData, 0, len(entries))
		failed := make([]opts.ScatterData, 0)
		for i, e := range entries {
			x[i] = fmt.Sprintf("%s(%d)", e.Model, i)
			if e.Converged {
				ok[i].Value = e.Iterations
				fail[i].Value = 0
				converged = append(converged, opts.ScatterData{Value: []float64{e.Guess, e.Value}})
			} else {
				ok[i].Value = 0
				fail[i].Value = e.Iterations
				failed = append(failed, opts.ScatterData{Value: []float64{e.Guess, e.Value}})
			}
		}
		bar.SetXAxis(x).
			AddSeries("收敛", ok).
			AddSeries("失败", fail).
			SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "iter"}))
		scatter.AddSeries("收敛", converged).
			AddSeries("失败", failed)
	}
	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		bar,
		scatter,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		log.Println(err)
	}
}
