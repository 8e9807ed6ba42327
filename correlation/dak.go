package correlation

import (
	"math"
	"zfactor/types"
)

// DAKModel Dranchuk & Abou-Kassem (1975) 隐式关联式
var DAKModel = types.ModelRegister(types.DAK, types.KindImplicit, types.Range{
	Tr: [2]float64{1, 3},
	Pr: [2]float64{0.2, 30},
}, DAK)

// dakCoefficients DAK 系数 A1..A11
var dakCoefficients = [11]float64{
	0.3265, -1.0700, -0.5339, 0.01569, -0.05165,
	0.5475, -0.7361, 0.1844, 0.1056, 0.6134, 0.7210,
}

// DAK 残差函数, 根即为压缩因子
func DAK(z, pr, tr float64) float64 {
	return bwrResidual(&dakCoefficients, z, pr, tr)
}

// bwrResidual 以对比密度表示的 11 常数状态方程残差
//
//	ρr = 0.27·Pr/(Z·Tr)
//	f(Z) = 1 + c1·ρr + c2·ρr² − c3·ρr⁵ + c4·(1+A11·ρr²)·ρr²/Tr³·exp(−A11·ρr²) − Z
func bwrResidual(a *[11]float64, z, pr, tr float64) float64 {
	rho := 0.27 * pr / (z * tr)
	rho2 := rho * rho
	tr2 := tr * tr
	tr3 := tr2 * tr
	c1 := a[0] + a[1]/tr + a[2]/tr3 + a[3]/(tr3*tr) + a[4]/(tr3*tr2)
	c2 := a[5] + a[6]/tr + a[7]/tr2
	c3 := a[8] * (a[6]/tr + a[7]/tr2)
	c4 := a[9] * (1 + a[10]*rho2) * (rho2 / tr3) * math.Exp(-a[10]*rho2)
	return 1 + c1*rho + c2*rho2 - c3*math.Pow(rho, 5) + c4 - z
}
