package main

import (
	"strconv"
)

// floatFlag 可选浮点参数, 未设置时保持为 nil
type floatFlag struct{ dst **float64 }

func (f floatFlag) String() string {
	if f.dst == nil || *f.dst == nil {
		return ""
	}
	return strconv.FormatFloat(**f.dst, 'g', -1, 64)
}

func (f floatFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f.dst = &v
	return nil
}

// extraFlag 直接给定的拟临界参数
type extraFlag struct {
	dst map[string]float64
	key string
}

func (f extraFlag) String() string {
	if v, ok := f.dst[f.key]; ok {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return ""
}

func (f extraFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.dst[f.key] = v
	return nil
}

// boolFlag 可选布尔参数, 未设置时保持为 nil
type boolFlag struct{ dst **bool }

func (f boolFlag) IsBoolFlag() bool { return true }

func (f boolFlag) String() string {
	if f.dst == nil || *f.dst == nil {
		return ""
	}
	return strconv.FormatBool(**f.dst)
}

func (f boolFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*f.dst = &v
	return nil
}
