package correlation

import "zfactor/types"

// LondonoModel Londono, Archer & Blasingame (2005) 隐式关联式
var LondonoModel = types.ModelRegister(types.Londono, types.KindImplicit, types.Range{
	Tr: [2]float64{1, 3},
	Pr: [2]float64{0.2, 30},
}, Londono)

// londonoCoefficients DAK 形式的重新拟合系数
var londonoCoefficients = [11]float64{
	0.3024696, -1.046964, -0.1078916, -0.7694186, 0.1965439,
	0.6527819, -1.118884, 0.3951957, 0.09313593, 0.8483081, 0.7880011,
}

// Londono 残差函数
func Londono(z, pr, tr float64) float64 {
	return bwrResidual(&londonoCoefficients, z, pr, tr)
}
