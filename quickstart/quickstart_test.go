package quickstart

import (
	"bytes"
	"errors"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"zfactor"
	"zfactor/types"

	"golang.org/x/image/font"
)

func TestPrGrid(t *testing.T) {
	grid, err := PrGrid(0.2, 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(grid) != 299 {
		t.Fatalf("网格数量错误: %d", len(grid))
	}
	if grid[0] != 0.2 || grid[len(grid)-1] != 30 || grid[1] != 0.3 {
		t.Errorf("网格端点错误: %v %v %v", grid[0], grid[1], grid[len(grid)-1])
	}
	for i := 1; i < len(grid); i++ {
		if math.Abs(grid[i]-grid[i-1]-0.1) > 1e-9 {
			t.Fatalf("步长错误: %v -> %v", grid[i-1], grid[i])
		}
	}
	grid, err = PrGrid(1, 1)
	if err != nil || len(grid) != 1 || grid[0] != 1 {
		t.Errorf("单点网格错误: %v %v", grid, err)
	}
}

func TestInvalidRange(t *testing.T) {
	for _, prmin := range []float64{0, -1, math.NaN()} {
		opt := DefaultOptions()
		opt.PrMin = prmin
		if _, _, err := Run(opt); !errors.Is(err, types.ErrInvalidParameter) {
			t.Errorf("prmin=%v 期望参数错误, 实际 %v", prmin, err)
		}
	}
	opt := DefaultOptions()
	opt.PrMin, opt.PrMax = 5, 3
	if _, _, err := Run(opt); !errors.Is(err, types.ErrInvalidParameter) {
		t.Errorf("prmax<prmin 期望参数错误, 实际 %v", err)
	}
}

func TestCompute(t *testing.T) {
	opt := DefaultOptions()
	opt.PrMin, opt.PrMax = 1, 2
	results, err := Compute(opt)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if len(results) != len(Trs) {
		t.Fatalf("曲线数量错误: %d", len(results))
	}
	keys := results.Keys()
	if keys[0] != 1.05 || keys[len(keys)-1] != 3.0 {
		t.Errorf("Tr 排列错误: %v", keys)
	}
	curve := results[1.5]
	if len(curve.Pr) != 11 || len(curve.Z) != 11 {
		t.Fatalf("曲线点数错误: %d", len(curve.Pr))
	}
	for i, pr := range curve.Pr {
		z, err := zfactor.Calc(zfactor.Params{Pr: zfactor.Float(pr), Tr: zfactor.Float(1.5)})
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(z-curve.Z[i]) > 1e-9 {
			t.Errorf("Pr=%v 结果与单点计算不一致: %v != %v", pr, curve.Z[i], z)
		}
	}
	if pr, _ := curve.Min(); pr != 2 {
		t.Errorf("Tr=1.5 在 Pr 1~2 内单调递减, 最低点应为 2: %v", pr)
	}
}

func TestComputeExplicit(t *testing.T) {
	opt := DefaultOptions()
	opt.ZModel = types.Kareem
	opt.PrMin, opt.PrMax = 0.5, 1
	results, err := Compute(opt)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if len(results[2.0].Z) != 6 {
		t.Errorf("曲线点数错误: %d", len(results[2.0].Z))
	}
	// 显式模型不接受迭代参数
	opt.Calc.Guess = zfactor.Float(0.9)
	if _, err := Compute(opt); !errors.Is(err, types.ErrUnsupportedParameter) {
		t.Errorf("期望参数不支持错误, 实际 %v", err)
	}
}

func TestRun(t *testing.T) {
	opt := DefaultOptions()
	opt.PrMin, opt.PrMax = 0.2, 3
	opt.TitleBold = "bold"
	results, p, err := Run(opt)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if p == nil || len(results) != len(Trs) {
		t.Fatal("结果为空")
	}
	if p.Title.Text != "bold"+DefaultTitlePlain {
		t.Errorf("标题错误: %s", p.Title.Text)
	}
	if p.Title.TextStyle.Font.Weight != font.WeightBold {
		t.Error("标题应加粗")
	}
	if p.X.Min != 0.2 || p.X.Max != 3 {
		t.Errorf("X 轴范围错误: %v %v", p.X.Min, p.X.Max)
	}
	wt, err := p.WriterTo(opt.Width, opt.Height, "svg")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		t.Fatalf("绘图失败: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("输出不是 svg")
	}
}

func TestCharts(t *testing.T) {
	opt := DefaultOptions()
	opt.PrMin, opt.PrMax = 1, 1.5
	results, err := Compute(opt)
	if err != nil {
		t.Fatal(err)
	}
	c := &Charts{Results: results, ZModel: types.DAK}
	rec := httptest.NewRecorder()
	c.Handler(rec, httptest.NewRequest("GET", "/", nil))
	body := rec.Body.String()
	for _, want := range []string{"Tr=1.05", "Tr=3", "DAK"} {
		if !strings.Contains(body, want) {
			t.Errorf("页面缺少 %q", want)
		}
	}
}
