package strategy

import (
	"math"

	"optionviz/models"
)

// ExtractStats derives summary statistics from a generated curve:
// max profit and loss across samples, every zero crossing of the payoff
// (linearly interpolated between adjacent samples), and the fraction of
// sampled prices with positive payoff as a naive profit probability in
// [0,100]. For the unreachable empty curve, max profit reports +Inf and
// max loss -Inf.
func ExtractStats(curve models.Curve) models.StrategyStats {
	maxProfit := math.Inf(-1)
	maxLoss := math.Inf(1)
	profitable := 0
	var breakevens []float64

	for i, pt := range curve {
		if pt.Payoff > maxProfit {
			maxProfit = pt.Payoff
		}
		if pt.Payoff < maxLoss {
			maxLoss = pt.Payoff
		}
		if pt.Payoff > 0 {
			profitable++
		}

		// A crossing happens whenever the payoff moves between the
		// non-positive and positive sides of zero; an exact zero counts
		// as non-positive.
		if i > 0 {
			prev := curve[i-1]
			if (prev.Payoff <= 0) != (pt.Payoff <= 0) {
				frac := math.Abs(prev.Payoff) / (math.Abs(prev.Payoff) + math.Abs(pt.Payoff))
				breakevens = append(breakevens, prev.Price+frac*(pt.Price-prev.Price))
			}
		}
	}

	if math.IsInf(maxProfit, -1) {
		maxProfit = math.Inf(1)
	}
	if math.IsInf(maxLoss, 1) {
		maxLoss = math.Inf(-1)
	}

	var probability float64
	if len(curve) > 0 {
		probability = 100 * float64(profitable) / float64(len(curve))
	}

	return models.StrategyStats{
		MaxProfit:         maxProfit,
		MaxLoss:           maxLoss,
		Breakeven:         breakevens,
		ProfitProbability: probability,
	}
}
