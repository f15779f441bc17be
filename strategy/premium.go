package strategy

import (
	"math"

	"optionviz/models"
)

// minPremium is the floor on any estimated premium, modeling a minimum
// bid-ask spread.
const minPremium = 0.05

// EstimatePremium produces a synthetic option premium from strike,
// underlying price and days to expiration. It is a fallback for when no
// live market quote is available, not a market price: intrinsic value
// plus a heuristic time value assuming 25% volatility with a Gaussian
// moneyness decay centered at-the-money. A daysToExpiration <= 0 defaults
// to 30. The result is never below 0.05.
func EstimatePremium(optionType models.OptionType, strike, currentPrice, daysToExpiration float64) float64 {
	if daysToExpiration <= 0 {
		daysToExpiration = DefaultDaysToExpiration
	}
	intrinsic := IntrinsicValue(optionType, strike, currentPrice)

	moneyness := 5 * math.Abs(currentPrice-strike) / currentPrice
	timeValue := currentPrice * 0.25 * math.Sqrt(daysToExpiration/365) * 0.4 * math.Exp(-moneyness*moneyness)

	return math.Max(minPremium, intrinsic+timeValue)
}
