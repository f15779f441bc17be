package probability

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"optionviz/models"
	"optionviz/strategy"
)

// densitySteps controls the resolution of the numeric integration over
// the terminal price distribution.
const densitySteps = 2000

// LogNormalProfitProbability estimates the probability, in [0,100], that
// the strategy expires profitable under a log-normal terminal price
// distribution with the given annualized volatility. The terminal
// distribution is centered so that E[S_T] = spot (zero drift). Returns 0
// for non-positive spot, volatility or horizon.
//
// This is the model-weighted complement of the uniform sampling estimate
// in strategy.ExtractStats.
func LogNormalProfitProbability(s models.Strategy, spot, volatility, daysToExpiration float64) float64 {
	if spot <= 0 || volatility <= 0 || daysToExpiration <= 0 {
		return 0
	}

	sigma := volatility * math.Sqrt(daysToExpiration/365)
	dist := distuv.LogNormal{
		Mu:    math.Log(spot) - 0.5*sigma*sigma,
		Sigma: sigma,
	}

	// Integrate the density over prices where the payoff is positive.
	// ±4 sigma in log space covers effectively all of the mass.
	low := spot * math.Exp(-4*sigma)
	high := spot * math.Exp(4*sigma)
	step := (high - low) / densitySteps

	var prob float64
	for i := 0; i < densitySteps; i++ {
		mid := low + (float64(i)+0.5)*step
		if strategy.StrategyPayoff(s, mid) > 0 {
			prob += dist.Prob(mid) * step
		}
	}

	return 100 * math.Min(1, prob)
}
