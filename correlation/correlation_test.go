package correlation

import (
	"math"
	"testing"
	"zfactor/types"
)

func TestRegistry(t *testing.T) {
	kinds := map[string]types.Kind{
		"DAK":             types.KindImplicit,
		"hall_yarborough": types.KindImplicit,
		"londono":         types.KindImplicit,
		"kareem":          types.KindExplicit,
	}
	for name, kind := range kinds {
		d, err := types.Lookup(name)
		if err != nil {
			t.Fatalf("查找模型 %s 失败: %v", name, err)
		}
		if d.Kind != kind {
			t.Errorf("模型 %s 求解方式错误: 期望 %v, 实际 %v", name, kind, d.Kind)
		}
		if d.Name != name {
			t.Errorf("模型名称错误: 期望 %s, 实际 %s", name, d.Name)
		}
		if d.Func == nil {
			t.Errorf("模型 %s 未绑定关联式", name)
		}
	}
}

func TestResidualAtKnownRoots(t *testing.T) {
	// Pr = 1.5, Tr = 1.5 时各隐式模型的根
	tests := []struct {
		name string
		fn   types.Correlation
		z    float64
	}{
		{"DAK", DAK, 0.8593143805613456},
		{"hall_yarborough", HallYarborough, 0.8581232116677928},
		{"londono", Londono, 0.8590863175847028},
	}
	for _, tt := range tests {
		if r := tt.fn(tt.z, 1.5, 1.5); math.Abs(r) > 1e-9 {
			t.Errorf("%s 残差不为零: %e", tt.name, r)
		}
		// 偏离根后残差应明显不为零
		if r := tt.fn(tt.z+0.05, 1.5, 1.5); math.Abs(r) < 1e-3 {
			t.Errorf("%s 在非根处残差过小: %e", tt.name, r)
		}
	}
}

func TestKareem(t *testing.T) {
	tests := []struct {
		pr, tr, z float64
	}{
		{1.5, 1.5, 0.85319604979742},
		{3.0523, 1.4160, 0.7150},
	}
	for _, tt := range tests {
		got := Kareem(0, tt.pr, tt.tr)
		if math.Abs(got-tt.z) > 1e-3 {
			t.Errorf("Kareem(Pr=%v, Tr=%v): 期望 %v, 实际 %v", tt.pr, tt.tr, tt.z, got)
		}
	}
	// z 参数不影响结果
	if Kareem(0.3, 1.5, 1.5) != Kareem(1.7, 1.5, 1.5) {
		t.Error("Kareem 结果不应依赖 z")
	}
}
