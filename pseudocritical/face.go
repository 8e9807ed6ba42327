// Package pseudocritical 拟临界参数模型, 将气体组成与压力温度换算为拟对比参数
package pseudocritical

import (
	"fmt"
	"sort"
	"zfactor/types"
)

// 附加参数与计算结果名称
const (
	KeyTpc          = "Tpc"           // 拟临界温度 (°R)
	KeyPpc          = "Ppc"           // 拟临界压力 (psia)
	KeyJ            = "J"             // Piper J 参数
	KeyK            = "K"             // Piper K 参数
	KeyECorrection  = "e_correction"  // Wichert-Aziz 酸气校正量 (°R)
	KeyTpcCorrected = "Tpc_corrected" // 校正后拟临界温度
	KeyPpcCorrected = "Ppc_corrected" // 校正后拟临界压力
)

// Props 模型计算过程中得到的拟临界参数
type Props map[string]float64

// Input 模型输入, nil 表示未提供
type Input struct {
	SG  *float64 // 气体相对密度
	P   *float64 // 压力 (psig)
	T   *float64 // 温度 (°F)
	H2S *float64 // H2S 摩尔分数
	CO2 *float64 // CO2 摩尔分数
	N2  *float64 // N2 摩尔分数
	Tr  *float64 // 已知拟对比温度
	Pr  *float64 // 已知拟对比压力

	IgnoreConflict bool               // 冲突时以输入值为准
	Extra          map[string]float64 // 直接给定的拟临界参数
}

// Model 拟临界参数模型接口
type Model interface {
	Name() string                                // 模型名称
	Reduce(in Input) (tr, pr float64, err error) // 计算拟对比温度与压力
	Props() Props                                // 计算得到的拟临界参数
}

// New 创建拟临界参数模型, 每次计算使用一个新实例
func New(m types.PModel) (Model, error) {
	switch m {
	case types.Piper:
		return &Piper{}, nil
	case types.Sutton:
		return &Sutton{}, nil
	}
	return nil, fmt.Errorf("%w: pseudo-critical model %q is not implemented. Choose from the list of available models: %s",
		types.ErrUnknownModel, m.String(), types.PModelNames())
}

// checkInput 检查附加参数名称与组分取值
func checkInput(model string, in Input, allowed ...string) error {
	keys := make([]string, 0, len(in.Extra))
	for key := range in.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		ok := false
		for _, a := range allowed {
			if key == a {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: pmodel=%q got an unexpected argument %q", types.ErrUnsupportedParameter, model, key)
		}
	}
	for _, f := range []struct {
		name  string
		value *float64
	}{{"H2S", in.H2S}, {"CO2", in.CO2}, {"N2", in.N2}} {
		if f.value != nil && (*f.value < 0 || *f.value > 1) {
			return fmt.Errorf("%w: mole fraction %s=%v must be within [0, 1]", types.ErrInvalidParameter, f.name, *f.value)
		}
	}
	if in.SG != nil && *in.SG <= 0 {
		return fmt.Errorf("%w: sg=%v must be greater than 0", types.ErrInvalidParameter, *in.SG)
	}
	return nil
}

// given 读取直接给定的参数, 与 from 中任一已提供的输入同时出现时视为冲突
func given(in Input, key string, from map[string]*float64) (float64, bool, error) {
	v, ok := in.Extra[key]
	if !ok {
		return 0, false, nil
	}
	if !in.IgnoreConflict {
		names := make([]string, 0, len(from))
		for name, p := range from {
			if p != nil {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			sort.Strings(names)
			return 0, false, fmt.Errorf("%w: %s=%v was given together with %v which would compute it. Set IgnoreConflict to use the given value",
				types.ErrConflict, key, v, names)
		}
	}
	return v, true, nil
}

// fraction 未提供的组分按 0 处理
func fraction(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// reduce 由拟临界参数计算拟对比温度与压力
func reduce(in Input, tpc, ppc float64) (tr, pr float64, err error) {
	if tpc <= 0 || ppc <= 0 {
		return 0, 0, fmt.Errorf("%w: pseudo-critical properties must be positive (Tpc=%v, Ppc=%v)", types.ErrInvalidParameter, tpc, ppc)
	}
	if tr, err = reduced(in.Tr, in.T, "Tr", "T", types.RankineOffset, tpc, in.IgnoreConflict); err != nil {
		return 0, 0, err
	}
	if pr, err = reduced(in.Pr, in.P, "Pr", "P", types.PsiaOffset, ppc, in.IgnoreConflict); err != nil {
		return 0, 0, err
	}
	return tr, pr, nil
}

// reduced 计算单个拟对比参数, 已知值优先
func reduced(known, raw *float64, name, rawName string, offset, critical float64, ignore bool) (float64, error) {
	if known != nil {
		if raw != nil && !ignore {
			return 0, fmt.Errorf("%w: %s=%v was given together with %s=%v. Set IgnoreConflict to use the given %s",
				types.ErrConflict, name, *known, rawName, *raw, name)
		}
		return *known, nil
	}
	if raw == nil {
		return 0, fmt.Errorf("%w: %s or %s is required", types.ErrMissingParameter, rawName, name)
	}
	return (*raw + offset) / critical, nil
}
