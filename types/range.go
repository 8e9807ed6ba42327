package types

// InRange 判断 (Pr, Tr) 是否在模型适用范围内
func InRange(pr, tr float64, m ZModel) bool {
	d, ok := zmodelList[m]
	return ok && d.Range.Contains(pr, tr)
}

// InRangeAll 判断所有 Pr 与 Tr 是否都在模型适用范围内, 任一越界即为假
func InRangeAll(prs, trs []float64, m ZModel) bool {
	d, ok := zmodelList[m]
	if !ok {
		return false
	}
	for _, pr := range prs {
		if !(pr >= d.Range.Pr[0] && pr <= d.Range.Pr[1]) {
			return false
		}
	}
	for _, tr := range trs {
		if !(tr >= d.Range.Tr[0] && tr <= d.Range.Tr[1]) {
			return false
		}
	}
	return true
}
