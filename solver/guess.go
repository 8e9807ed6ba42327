package solver

import (
	"math"
	"sort"
	"zfactor/types"
)

// DefaultGuess 未指定初值时的默认值
func DefaultGuess(pr float64) float64 {
	if pr < types.HighPressureBound {
		return types.LowPressureGuess
	}
	// TODO: Pr 超过 15 后 Z 随 Pr 近似线性, 可按 Tr 分别拟合直线给出初值
	return types.HighPressureGuess
}

// GuessLadder 兜底初值按与 guess 的距离排序, 距离相同时较小值在前
func GuessLadder(guess float64) []float64 {
	ladder := make([]float64, len(types.GuessLadder))
	copy(ladder, types.GuessLadder[:])
	sort.SliceStable(ladder, func(i, j int) bool {
		return math.Abs(ladder[i]-guess) < math.Abs(ladder[j]-guess)
	})
	return ladder
}

// BuildGuesses 构造初值序列
// 顺序: 显式模型初值(smart 且在其适用范围内), 给定初值, 兜底初值; 去重后保留首次出现的位置
func BuildGuesses(guess *float64, pr, tr float64, smart bool) []float64 {
	g := DefaultGuess(pr)
	if guess != nil {
		g = *guess
	}
	guesses := make([]float64, 0, len(types.GuessLadder)+2)
	if smart && types.InRange(pr, tr, types.SmartGuessModel) {
		if d, err := types.SmartGuessModel.Descriptor(); err == nil {
			if z := d.Func(0, pr, tr); finite(z) {
				guesses = append(guesses, z)
			}
		}
	}
	guesses = append(guesses, g)
	guesses = append(guesses, GuessLadder(g)...)
	return dedupe(guesses)
}

// dedupe 去除重复值
func dedupe(values []float64) []float64 {
	seen := make(map[float64]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
