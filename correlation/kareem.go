package correlation

import (
	"math"
	"zfactor/types"
)

// KareemModel Kareem, Iwalewa & Al-Marhoun (2016) 显式关联式
var KareemModel = types.ModelRegister(types.Kareem, types.KindExplicit, types.Range{
	Tr: [2]float64{1, 3},
	Pr: [2]float64{0.2, 15},
}, Kareem)

// kareemCoefficients 系数 a1..a19
var kareemCoefficients = [19]float64{
	0.317842, 0.382216, -7.768354, 14.290531, 0.000002,
	-0.004693, 0.096254, 0.166720, 0.966910, 0.063069,
	-1.966847, 21.0581, -27.0246, 16.23, 207.783,
	-488.161, 176.29, 1.88453, 3.05921,
}

// Kareem 直接计算压缩因子, z 参数不参与计算
func Kareem(_, pr, tr float64) float64 {
	a := &kareemCoefficients
	t := 1 / tr
	t2, t3 := t*t, t*t*t
	A := a[0] * t * math.Exp(a[1]*(1-t)*(1-t)) * pr
	B := a[2]*t + a[3]*t2 + a[4]*math.Pow(t, 6)*math.Pow(pr, 6)
	C := a[8] + a[7]*t*pr + a[6]*t2*pr*pr + a[5]*t3*pr*pr*pr
	D := a[9] * t * math.Exp(a[10]*(1-t)*(1-t))
	E := a[11]*t + a[12]*t2 + a[13]*t3
	F := a[14]*t + a[15]*t2 + a[16]*t3
	G := a[17] + a[18]*t
	y := D * pr / ((1+A*A)/C - A*A*B/(C*C*C))
	return D * pr * (1 + y + y*y - y*y*y) / ((D*pr + E*y*y - F*math.Pow(y, G)) * math.Pow(1-y, 3))
}
