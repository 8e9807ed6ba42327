package pseudocritical

import (
	"fmt"
	"math"
	"zfactor/types"
)

// 杂质组分临界参数
const (
	tcH2S = 672.35 // °R
	pcH2S = 1306.0 // psia
	tcCO2 = 547.58 // °R
	pcCO2 = 1071.0 // psia
	tcN2  = 227.16 // °R
	pcN2  = 492.84 // psia
)

// Piper 系数
var (
	piperAlpha = [6]float64{0.11582, -0.45820, -0.90348, -0.66026, 0.70729, -0.099397}
	piperBeta  = [6]float64{3.8216, -0.06534, -0.42113, -0.91249, 17.438, -3.2191}
)

// Piper Piper, McCain & Corredor (1993) 模型, 可处理 H2S, CO2, N2
type Piper struct {
	props Props
}

// Name 模型名称
func (*Piper) Name() string { return types.Piper.String() }

// Props 计算得到的拟临界参数
func (p *Piper) Props() Props { return p.props }

// CalcJ 计算 J 参数
func (*Piper) CalcJ(sg, h2s, co2, n2 float64) float64 {
	a := &piperAlpha
	return a[0] + a[1]*h2s*tcH2S/pcH2S + a[2]*co2*tcCO2/pcCO2 + a[3]*n2*tcN2/pcN2 + a[4]*sg + a[5]*sg*sg
}

// CalcK 计算 K 参数
func (*Piper) CalcK(sg, h2s, co2, n2 float64) float64 {
	b := &piperBeta
	return b[0] + b[1]*h2s*tcH2S/math.Sqrt(pcH2S) + b[2]*co2*tcCO2/math.Sqrt(pcCO2) +
		b[3]*n2*tcN2/math.Sqrt(pcN2) + b[4]*sg + b[5]*sg*sg
}

// Reduce 计算拟对比温度与压力
func (p *Piper) Reduce(in Input) (tr, pr float64, err error) {
	if err = checkInput(p.Name(), in, KeyJ, KeyK, KeyTpc, KeyPpc); err != nil {
		return 0, 0, err
	}
	from := map[string]*float64{"sg": in.SG}
	tpc, hasTpc, err := given(in, KeyTpc, from)
	if err != nil {
		return 0, 0, err
	}
	ppc, hasPpc, err := given(in, KeyPpc, from)
	if err != nil {
		return 0, 0, err
	}
	p.props = Props{}
	// Tpc = K²/J, Ppc = Tpc/J
	needJ := !hasTpc || !hasPpc
	needK := !hasTpc
	h2s, co2, n2 := fraction(in.H2S), fraction(in.CO2), fraction(in.N2)
	var j, k float64
	if needJ {
		var ok bool
		if j, ok, err = given(in, KeyJ, from); err != nil {
			return 0, 0, err
		} else if !ok {
			if in.SG == nil {
				return 0, 0, fmt.Errorf("%w: sg is required to compute J", types.ErrMissingParameter)
			}
			j = p.CalcJ(*in.SG, h2s, co2, n2)
		}
		if j == 0 {
			return 0, 0, fmt.Errorf("%w: J must not be zero", types.ErrInvalidParameter)
		}
		p.props[KeyJ] = j
	}
	if needK {
		var ok bool
		if k, ok, err = given(in, KeyK, from); err != nil {
			return 0, 0, err
		} else if !ok {
			if in.SG == nil {
				return 0, 0, fmt.Errorf("%w: sg is required to compute K", types.ErrMissingParameter)
			}
			k = p.CalcK(*in.SG, h2s, co2, n2)
		}
		p.props[KeyK] = k
	}
	if !hasTpc {
		tpc = k * k / j
	}
	if !hasPpc {
		ppc = tpc / j
	}
	p.props[KeyTpc] = tpc
	p.props[KeyPpc] = ppc
	return reduce(in, tpc, ppc)
}
