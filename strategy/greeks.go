package strategy

import (
	"math"

	"optionviz/models"
)

// DefaultDaysToExpiration is the horizon assumed whenever a caller does
// not supply one.
const DefaultDaysToExpiration = 30.0

// The greeks below are heuristic charting curves, not derivatives of a
// pricing model: each is an independently chosen closed form with the
// qualitatively correct sign, peak location and decay. All are total
// functions over their numeric domain; a zero currentPrice or strike
// produces NaN/Inf per IEEE semantics, so callers validate reference
// prices before invoking.

// LegDelta is a logistic curve in (price - strike), with steepness set by
// 10% of the reference spot. Calls map to (0,1), puts to (-1,0); the
// result is scaled by the leg's sign and quantity.
func LegDelta(leg models.OptionLeg, price, currentPrice float64) float64 {
	x := (price - leg.Strike) / (currentPrice * 0.1)
	var delta float64
	if leg.Type == models.Call {
		delta = 1 / (1 + math.Exp(-x))
	} else {
		delta = -1 / (1 + math.Exp(x))
	}
	return leg.Action.Sign() * delta * float64(leg.Quantity)
}

// LegGamma is a Gaussian bump centered at the strike, peaking at 0.02.
func LegGamma(leg models.OptionLeg, price, currentPrice float64) float64 {
	m := math.Abs(price-leg.Strike) / (currentPrice * 0.1)
	gamma := math.Exp(-m*m) * 0.02
	return leg.Action.Sign() * gamma * float64(leg.Quantity)
}

// LegTheta models time decay: largest at-the-money, scaled by
// sqrt(days/30). Long legs decay (negative), short legs collect
// (positive).
func LegTheta(leg models.OptionLeg, price, currentPrice, daysToExpiration float64) float64 {
	m := math.Abs(price-leg.Strike) / currentPrice
	atmFactor := math.Exp(-m * m * 2)
	base := -leg.Premium * 0.03 * atmFactor * math.Sqrt(daysToExpiration/30)
	return leg.Action.Sign() * base * float64(leg.Quantity)
}

// LegVega models volatility sensitivity with a steeper at-the-money
// falloff than theta. Long legs contribute positively, short legs
// negatively.
func LegVega(leg models.OptionLeg, price, currentPrice, daysToExpiration float64) float64 {
	m := math.Abs(price-leg.Strike) / currentPrice
	atmFactor := math.Exp(-m * m * 3)
	base := leg.Premium * 0.15 * atmFactor * math.Sqrt(daysToExpiration/30)
	return leg.Action.Sign() * base * float64(leg.Quantity)
}

// Delta aggregates LegDelta across all legs.
func Delta(s models.Strategy, price, currentPrice float64) float64 {
	var total float64
	for _, leg := range s.Legs {
		total += LegDelta(leg, price, currentPrice)
	}
	return total
}

// Gamma aggregates LegGamma across all legs.
func Gamma(s models.Strategy, price, currentPrice float64) float64 {
	var total float64
	for _, leg := range s.Legs {
		total += LegGamma(leg, price, currentPrice)
	}
	return total
}

// Theta aggregates LegTheta across all legs.
func Theta(s models.Strategy, price, currentPrice, daysToExpiration float64) float64 {
	var total float64
	for _, leg := range s.Legs {
		total += LegTheta(leg, price, currentPrice, daysToExpiration)
	}
	return total
}

// Vega aggregates LegVega across all legs.
func Vega(s models.Strategy, price, currentPrice, daysToExpiration float64) float64 {
	var total float64
	for _, leg := range s.Legs {
		total += LegVega(leg, price, currentPrice, daysToExpiration)
	}
	return total
}
