package tax

// Portion extracts the tax part of a tax-inclusive total:
//
//	total * percent / (100 + percent)
//
// All stored amounts are tax-inclusive, so the naive total*percent/100
// would overstate the tax. Rounding is left to the caller.
func Portion(total, percent float64) float64 {
	if percent <= 0 {
		return 0
	}
	return total * percent / (100 + percent)
}
