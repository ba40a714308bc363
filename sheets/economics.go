package sheets

import "math"

// ProRataDailyReward splits a pool's total daily reward by stake share:
// stake / totalStake * totalDaily. A zero or NaN total stake yields NaN, the
// same sentinel the lenient amount parsing produces.
func ProRataDailyReward(stake, totalStake, totalDaily float64) float64 {
	if totalStake == 0 || math.IsNaN(totalStake) {
		return math.NaN()
	}
	return stake / totalStake * totalDaily
}

// TokenValue prices a quantity of tokens at the given unit price.
func TokenValue(qty, unitPrice float64) float64 {
	return qty * unitPrice
}
