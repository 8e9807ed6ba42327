package types

import (
	"fmt"
	"strings"
)

// Kind 关联式求解方式
type Kind int

// 关联式求解方式常量定义
const (
	KindExplicit Kind = iota // 显式, 直接计算 Z
	KindImplicit             // 隐式, 需要迭代求根
)

// String 返回求解方式的字符串表示
func (k Kind) String() string {
	switch k {
	case KindExplicit:
		return "explicit"
	case KindImplicit:
		return "implicit"
	}
	return "Unknown"
}

// Correlation 压缩因子关联式
// 隐式模型返回残差 f(z) , 显式模型忽略 z 直接返回 Z
type Correlation func(z, pr, tr float64) float64

// Range 模型适用范围(闭区间)
type Range struct {
	Tr [2]float64 // 拟对比温度范围
	Pr [2]float64 // 拟对比压力范围
}

// Contains 判断单点是否在范围内
func (r Range) Contains(pr, tr float64) bool {
	return pr >= r.Pr[0] && pr <= r.Pr[1] && tr >= r.Tr[0] && tr <= r.Tr[1]
}

// Descriptor 模型描述
type Descriptor struct {
	Name  string      // 模型名称
	Kind  Kind        // 求解方式
	Range Range       // 适用范围
	Func  Correlation // 关联式
}

// ZModel 压缩因子关联式类型, 零值表示未指定
type ZModel int

// 压缩因子关联式类型常量定义
const (
	ZModelUnset    ZModel = iota // 未指定
	DAK                          // Dranchuk & Abou-Kassem
	HallYarborough               // Hall & Yarborough
	Londono                      // Londono, Archer & Blasingame
	Kareem                       // Kareem, Iwalewa & Al-Marhoun
)

// zmodelOrder 模型名称顺序, 用于错误提示
var zmodelOrder = []ZModel{DAK, HallYarborough, Londono, Kareem}

// zmodelNames 模型名称映射
var zmodelNames = map[ZModel]string{
	DAK:            "DAK",
	HallYarborough: "hall_yarborough",
	Londono:        "londono",
	Kareem:         "kareem",
}

// zmodelList 已注册的模型
var zmodelList = map[ZModel]Descriptor{}

// String 返回模型名称
func (m ZModel) String() string {
	if name, ok := zmodelNames[m]; ok {
		return name
	}
	return "Unknown"
}

// Descriptor 得到模型描述
func (m ZModel) Descriptor() (Descriptor, error) {
	if d, ok := zmodelList[m]; ok {
		return d, nil
	}
	return Descriptor{}, fmt.Errorf("%w: Z-factor model %q is not implemented. Choose from the list of available models: %s",
		ErrUnknownModel, m.String(), ZModelNames())
}

// ZModelNames 可选模型名称列表
func ZModelNames() string {
	names := make([]string, len(zmodelOrder))
	for i, m := range zmodelOrder {
		names[i] = `"` + zmodelNames[m] + `"`
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// ParseZModel 通过名称获取模型类型
func ParseZModel(name string) (ZModel, error) {
	for m, n := range zmodelNames {
		if n == name {
			return m, nil
		}
	}
	return ZModelUnset, fmt.Errorf("%w: Z-factor model %q is not implemented. Choose from the list of available models: %s",
		ErrUnknownModel, name, ZModelNames())
}

// Lookup 通过名称获取模型描述
func Lookup(name string) (Descriptor, error) {
	m, err := ParseZModel(name)
	if err != nil {
		return Descriptor{}, err
	}
	return m.Descriptor()
}

// ModelRegister 注册模型
func ModelRegister(m ZModel, kind Kind, r Range, fn Correlation) ZModel {
	name, ok := zmodelNames[m]
	if !ok {
		panic(fmt.Errorf("未定义的模型类型: %d", m))
	}
	if _, ok := zmodelList[m]; ok {
		panic(fmt.Errorf("指定模型类型已经注册: %s:%d", name, m))
	}
	zmodelList[m] = Descriptor{Name: name, Kind: kind, Range: r, Func: fn}
	return m
}

// PModel 拟临界参数模型类型, 零值表示未指定
type PModel int

// 拟临界参数模型类型常量定义
const (
	PModelUnset PModel = iota // 未指定
	Piper                     // Piper, McCain & Corredor
	Sutton                    // Sutton + Wichert-Aziz 校正
)

// String 返回模型名称
func (m PModel) String() string {
	switch m {
	case Piper:
		return "piper"
	case Sutton:
		return "sutton"
	}
	return "Unknown"
}

// PModelNames 可选拟临界模型名称列表
func PModelNames() string { return `["sutton", "piper"]` }

// ParsePModel 通过名称获取拟临界模型类型
func ParsePModel(name string) (PModel, error) {
	switch name {
	case "piper":
		return Piper, nil
	case "sutton":
		return Sutton, nil
	}
	return PModelUnset, fmt.Errorf("%w: pseudo-critical model %q is not implemented. Choose from the list of available models: %s",
		ErrUnknownModel, name, PModelNames())
}
