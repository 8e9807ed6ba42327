package pseudocritical

import (
	"errors"
	"math"
	"testing"
	"zfactor/types"
)

func f(v float64) *float64 { return &v }

func TestPiper(t *testing.T) {
	p := &Piper{}
	tr, pr, err := p.Reduce(Input{SG: f(0.7), P: f(2010), T: f(75)})
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	props := p.Props()
	expected := map[string]float64{
		KeyJ:   0.56221847,
		KeyK:   14.450841,
		KeyTpc: 371.4335560823552,
		KeyPpc: 660.6569792741872,
	}
	for key, want := range expected {
		if math.Abs(props[key]-want) > 1e-6 {
			t.Errorf("%s 不正确: 期望 %v, 实际 %v", key, want, props[key])
		}
	}
	if math.Abs(tr-1.4394768357478496) > 1e-9 {
		t.Errorf("Tr 不正确: %v", tr)
	}
	if math.Abs(pr-3.0646766226921294) > 1e-9 {
		t.Errorf("Pr 不正确: %v", pr)
	}
}

func TestPiperContaminants(t *testing.T) {
	p := &Piper{}
	clean := p.CalcJ(0.7, 0, 0, 0)
	dirty := p.CalcJ(0.7, 0.07, 0.1, 0.05)
	if dirty >= clean {
		t.Errorf("杂质应降低 J: %v >= %v", dirty, clean)
	}
	if _, _, err := p.Reduce(Input{SG: f(0.7), P: f(2010), T: f(75), H2S: f(1.5)}); !errors.Is(err, types.ErrInvalidParameter) {
		t.Errorf("摩尔分数越界应失败, 实际 %v", err)
	}
}

func TestPiperGivenProperties(t *testing.T) {
	p := &Piper{}
	tr, pr, err := p.Reduce(Input{P: f(2010), T: f(75), Extra: map[string]float64{KeyTpc: 371.4335560823552, KeyPpc: 660.6569792741872}})
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if math.Abs(tr-1.4394768357478496) > 1e-9 || math.Abs(pr-3.0646766226921294) > 1e-9 {
		t.Errorf("Tr/Pr 不正确: %v %v", tr, pr)
	}
	if _, ok := p.Props()[KeyJ]; ok {
		t.Error("Tpc 与 Ppc 已知时不应计算 J")
	}
	// J, K 给定
	p = &Piper{}
	if _, _, err := p.Reduce(Input{P: f(2010), T: f(75), Extra: map[string]float64{KeyJ: 0.56221847, KeyK: 14.450841}}); err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if math.Abs(p.Props()[KeyTpc]-371.4335560823552) > 1e-6 {
		t.Errorf("Tpc 不正确: %v", p.Props()[KeyTpc])
	}
}

func TestConflict(t *testing.T) {
	in := Input{SG: f(0.7), P: f(2010), T: f(75), Extra: map[string]float64{KeyTpc: 400}}
	if _, _, err := (&Piper{}).Reduce(in); !errors.Is(err, types.ErrConflict) {
		t.Fatalf("期望冲突错误, 实际 %v", err)
	}
	in.IgnoreConflict = true
	p := &Piper{}
	if _, _, err := p.Reduce(in); err != nil {
		t.Fatalf("忽略冲突后计算失败: %v", err)
	}
	if p.Props()[KeyTpc] != 400 {
		t.Errorf("应使用给定 Tpc, 实际 %v", p.Props()[KeyTpc])
	}
	// 已知 Tr 与 T 同时提供
	if _, _, err := (&Sutton{}).Reduce(Input{SG: f(0.7), P: f(2010), T: f(75), Tr: f(1.5)}); !errors.Is(err, types.ErrConflict) {
		t.Errorf("期望冲突错误, 实际 %v", err)
	}
}

func TestSutton(t *testing.T) {
	s := &Sutton{}
	tr, pr, err := s.Reduce(Input{SG: f(0.7), P: f(2010), T: f(75)})
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if math.Abs(s.Props()[KeyTpc]-377.59) > 1e-9 {
		t.Errorf("Tpc 不正确: %v", s.Props()[KeyTpc])
	}
	if s.Props()[KeyECorrection] != 0 {
		t.Errorf("无酸气时校正量应为 0: %v", s.Props()[KeyECorrection])
	}
	if math.Abs(tr-1.416006779840568) > 1e-9 || math.Abs(pr-3.052299287239047) > 1e-9 {
		t.Errorf("Tr/Pr 不正确: %v %v", tr, pr)
	}
}

func TestSuttonGivenProperties(t *testing.T) {
	s := &Sutton{}
	tr, pr, err := s.Reduce(Input{P: f(2010), T: f(75), IgnoreConflict: true, Extra: map[string]float64{
		KeyPpc: 663, KeyECorrection: 21, KeyTpc: 377.59,
	}})
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if math.Abs(s.Props()[KeyTpcCorrected]-356.59) > 1e-9 {
		t.Errorf("校正后 Tpc 不正确: %v", s.Props()[KeyTpcCorrected])
	}
	if math.Abs(tr-534.67/356.59) > 1e-12 {
		t.Errorf("Tr 不正确: %v", tr)
	}
	if math.Abs(pr-2024.7/(663*356.59/377.59)) > 1e-12 {
		t.Errorf("Pr 不正确: %v", pr)
	}
}

func TestSuttonErrors(t *testing.T) {
	s := &Sutton{}
	if _, _, err := s.Reduce(Input{SG: f(0.7), P: f(2010), T: f(75), N2: f(0.05)}); !errors.Is(err, types.ErrUnsupportedParameter) {
		t.Errorf("Sutton 不支持 N2, 实际 %v", err)
	}
	if _, _, err := s.Reduce(Input{SG: f(0.7), P: f(2010), T: f(75), Extra: map[string]float64{KeyJ: 0.5}}); !errors.Is(err, types.ErrUnsupportedParameter) {
		t.Errorf("Sutton 不接受 J, 实际 %v", err)
	}
	if _, _, err := s.Reduce(Input{P: f(2010), T: f(75)}); !errors.Is(err, types.ErrMissingParameter) {
		t.Errorf("缺少 sg 应失败, 实际 %v", err)
	}
	if _, _, err := s.Reduce(Input{SG: f(0.7), T: f(75)}); !errors.Is(err, types.ErrMissingParameter) {
		t.Errorf("缺少 P 应失败, 实际 %v", err)
	}
	if _, _, err := s.Reduce(Input{SG: f(0.7), P: f(2010), T: f(75), H2S: f(0.1), Extra: map[string]float64{KeyECorrection: 10}}); !errors.Is(err, types.ErrConflict) {
		t.Errorf("期望冲突错误, 实际 %v", err)
	}
}

func TestNew(t *testing.T) {
	for _, m := range []types.PModel{types.Piper, types.Sutton} {
		model, err := New(m)
		if err != nil {
			t.Fatalf("创建 %v 失败: %v", m, err)
		}
		if model.Name() != m.String() {
			t.Errorf("名称不正确: %s", model.Name())
		}
	}
	if _, err := New(types.PModel(9)); !errors.Is(err, types.ErrUnknownModel) {
		t.Errorf("期望未知模型错误, 实际 %v", err)
	}
}
