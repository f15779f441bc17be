package probability

import (
	"math"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"optionviz/models"
	"optionviz/strategy"
)

// NumSimulations is the default Monte Carlo sample count.
const NumSimulations = 10000

var rngPool = sync.Pool{
	New: func() interface{} {
		return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	},
}

// SimulateTerminalPrices draws n terminal underlying prices from a
// geometric Brownian motion with the given annualized drift and
// volatility over daysToExpiration days.
func SimulateTerminalPrices(spot, drift, volatility, daysToExpiration float64, n int) []float64 {
	rng := rngPool.Get().(*rand.Rand)
	defer rngPool.Put(rng)

	tau := daysToExpiration / 365
	mean := (drift - 0.5*volatility*volatility) * tau
	stddev := volatility * math.Sqrt(tau)

	prices := make([]float64, n)
	for i := range prices {
		prices[i] = spot * math.Exp(mean+stddev*rng.NormFloat64())
	}
	return prices
}

// MonteCarloProfitProbability simulates GBM terminal prices and returns
// the fraction, in [0,100], that leave the strategy with positive
// payoff. Returns 0 for non-positive spot, volatility or horizon.
func MonteCarloProfitProbability(s models.Strategy, spot, riskFreeRate, volatility, daysToExpiration float64) float64 {
	if spot <= 0 || volatility <= 0 || daysToExpiration <= 0 {
		return 0
	}

	prices := SimulateTerminalPrices(spot, riskFreeRate, volatility, daysToExpiration, NumSimulations)

	profitable := 0
	for _, p := range prices {
		if strategy.StrategyPayoff(s, p) > 0 {
			profitable++
		}
	}
	return 100 * float64(profitable) / float64(len(prices))
}
