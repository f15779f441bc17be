package strategy

import (
	"gonum.org/v1/gonum/floats"

	"optionviz/models"
)

const (
	// DefaultPriceRange defines the charted window as ±15% around the
	// reference price.
	DefaultPriceRange = 0.15

	// curveSamples partitions the window into 200 equal intervals,
	// inclusive of both endpoints.
	curveSamples = 201
)

// GenerateCurve samples payoff and greeks over a symmetric price window
// [currentPrice*(1-priceRange), currentPrice*(1+priceRange)]. A
// priceRange <= 0 defaults to 0.15. Points come back in ascending price
// order. Theta and vega are sampled at the fixed 30-day charting
// horizon; callers needing a different horizon re-derive via LegTheta
// and LegVega.
func GenerateCurve(s models.Strategy, currentPrice, priceRange float64) models.Curve {
	if priceRange <= 0 {
		priceRange = DefaultPriceRange
	}

	prices := floats.Span(make([]float64, curveSamples),
		currentPrice*(1-priceRange), currentPrice*(1+priceRange))

	curve := make(models.Curve, 0, curveSamples)
	for _, p := range prices {
		curve = append(curve, models.CurvePoint{
			Price:  p,
			Payoff: StrategyPayoff(s, p),
			Delta:  Delta(s, p, currentPrice),
			Gamma:  Gamma(s, p, currentPrice),
			Theta:  Theta(s, p, currentPrice, DefaultDaysToExpiration),
			Vega:   Vega(s, p, currentPrice, DefaultDaysToExpiration),
		})
	}
	return curve
}
