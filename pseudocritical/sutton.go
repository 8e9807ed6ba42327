package pseudocritical

import (
	"fmt"
	"math"
	"zfactor/types"
)

// Sutton Sutton (1985) 相对密度关联式, 酸气采用 Wichert-Aziz 校正, 不含 N2 项
type Sutton struct {
	props Props
}

// Name 模型名称
func (*Sutton) Name() string { return types.Sutton.String() }

// Props 计算得到的拟临界参数
func (s *Sutton) Props() Props { return s.props }

// CalcTpc 未校正的拟临界温度 (°R)
func (*Sutton) CalcTpc(sg float64) float64 { return 169.2 + 349.5*sg - 74.0*sg*sg }

// CalcPpc 未校正的拟临界压力 (psia)
func (*Sutton) CalcPpc(sg float64) float64 { return 756.8 - 131.0*sg - 3.6*sg*sg }

// CalcECorrection Wichert-Aziz 校正量
func (*Sutton) CalcECorrection(h2s, co2 float64) float64 {
	a := h2s + co2
	return 120*(math.Pow(a, 0.9)-math.Pow(a, 1.6)) + 15*(math.Sqrt(h2s)-math.Pow(h2s, 4))
}

// Reduce 计算拟对比温度与压力
func (s *Sutton) Reduce(in Input) (tr, pr float64, err error) {
	if in.N2 != nil {
		return 0, 0, fmt.Errorf("%w: pmodel=%q does not support N2 as input", types.ErrUnsupportedParameter, s.Name())
	}
	if err = checkInput(s.Name(), in, KeyTpc, KeyPpc, KeyECorrection); err != nil {
		return 0, 0, err
	}
	sgFrom := map[string]*float64{"sg": in.SG}
	tpc, ok, err := given(in, KeyTpc, sgFrom)
	if err != nil {
		return 0, 0, err
	} else if !ok {
		if in.SG == nil {
			return 0, 0, fmt.Errorf("%w: sg or Tpc is required", types.ErrMissingParameter)
		}
		tpc = s.CalcTpc(*in.SG)
	}
	ppc, ok, err := given(in, KeyPpc, sgFrom)
	if err != nil {
		return 0, 0, err
	} else if !ok {
		if in.SG == nil {
			return 0, 0, fmt.Errorf("%w: sg or Ppc is required", types.ErrMissingParameter)
		}
		ppc = s.CalcPpc(*in.SG)
	}
	h2s, co2 := fraction(in.H2S), fraction(in.CO2)
	e, ok, err := given(in, KeyECorrection, map[string]*float64{"H2S": in.H2S, "CO2": in.CO2})
	if err != nil {
		return 0, 0, err
	} else if !ok {
		e = s.CalcECorrection(h2s, co2)
	}
	// 酸气校正
	tpcC := tpc - e
	ppcC := ppc * tpcC / (tpc + h2s*(1-h2s)*e)
	s.props = Props{
		KeyTpc:          tpc,
		KeyPpc:          ppc,
		KeyECorrection:  e,
		KeyTpcCorrected: tpcC,
		KeyPpcCorrected: ppcC,
	}
	return reduce(in, tpcC, ppcC)
}
