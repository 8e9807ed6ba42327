package correlation

import (
	"math"
	"zfactor/types"
)

// HallYarboroughModel Hall & Yarborough (1973) 隐式关联式
var HallYarboroughModel = types.ModelRegister(types.HallYarborough, types.KindImplicit, types.Range{
	Tr: [2]float64{1, 3},
	Pr: [2]float64{0.2, 20.5},
}, HallYarborough)

// HallYarborough 残差函数
// 以对比密度 y = 0.06125·Pr·t·exp(−1.2(1−t)²)/Z 表示, t = 1/Tr
func HallYarborough(z, pr, tr float64) float64 {
	t := 1 / tr
	a := 0.06125 * pr * t * math.Exp(-1.2*(1-t)*(1-t))
	y := a / z
	y2, y3 := y*y, y*y*y
	t2, t3 := t*t, t*t*t
	return -a + (y+y2+y3-y2*y2)/math.Pow(1-y, 3) -
		(14.76*t-9.76*t2+4.58*t3)*y2 +
		(90.7*t-242.2*t2+42.4*t3)*math.Pow(y, 2.18+2.82*t)
}
