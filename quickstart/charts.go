package quickstart

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"zfactor/types"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	etypes "github.com/go-echarts/go-echarts/v2/types"
)

// Charts 网页交互图
type Charts struct {
	Results Results
	ZModel  types.ZModel
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	zm := c.ZModel
	if zm == types.ZModelUnset {
		zm = types.DAK
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     etypes.ThemeWesteros,
			PageTitle: DefaultTitleBold,
			Width:     "1200px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    DefaultTitleBold,
			Subtitle: fmt.Sprintf("zmodel = '%s'", zm),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Pr",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Z",
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	for _, tr := range c.Results.Keys() {
		curve := c.Results[tr]
		items := make([]opts.LineData, len(curve.Pr))
		for i := range curve.Pr {
			items[i] = opts.LineData{Value: []float64{curve.Pr[i], curve.Z[i]}}
		}
		line.AddSeries("Tr="+strconv.FormatFloat(tr, 'g', -1, 64), items,
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(false),
			}))
	}
	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		log.Println(err)
	}
}
