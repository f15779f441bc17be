package probability

import (
	"sort"

	"optionviz/models"
	"optionviz/strategy"
)

// ValueAtRisk computes the payoff loss at the given confidence level
// over the supplied simulated terminal prices. A confidence of 0.95
// returns the loss exceeded by only 5% of simulations. Returns 0 when no
// simulations are supplied.
func ValueAtRisk(s models.Strategy, simulations []float64, confidenceLevel float64) float64 {
	if len(simulations) == 0 {
		return 0
	}

	losses := strategyLosses(s, simulations)
	sort.Float64s(losses)

	index := int(confidenceLevel * float64(len(losses)))
	if index >= len(losses) {
		index = len(losses) - 1
	}
	return losses[index]
}

// ExpectedShortfall computes the average loss beyond the ValueAtRisk
// threshold at the given confidence level.
func ExpectedShortfall(s models.Strategy, simulations []float64, confidenceLevel float64) float64 {
	if len(simulations) == 0 {
		return 0
	}

	losses := strategyLosses(s, simulations)
	sort.Float64s(losses)

	index := int(confidenceLevel * float64(len(losses)))
	if index >= len(losses) {
		index = len(losses) - 1
	}

	var total float64
	tail := losses[index:]
	for _, l := range tail {
		total += l
	}
	return total / float64(len(tail))
}

// strategyLosses converts simulated terminal prices into losses, the
// negation of the strategy payoff.
func strategyLosses(s models.Strategy, simulations []float64) []float64 {
	losses := make([]float64, len(simulations))
	for i, finalPrice := range simulations {
		losses[i] = -strategy.StrategyPayoff(s, finalPrice)
	}
	return losses
}
