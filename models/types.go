package models

// OptionType identifies the contract kind of a leg.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// Action identifies whether a leg is long or short.
type Action string

const (
	Buy  Action = "buy"
	Sell Action = "sell"
)

// Sign returns +1 for a long (buy) leg and -1 for a short (sell) leg.
// Every per-leg quantity (payoff, greeks) is scaled by this sign before
// aggregation across a strategy.
func (a Action) Sign() float64 {
	if a == Buy {
		return 1
	}
	return -1
}

// OptionLeg is a single option position within a strategy.
// Strike must be positive, Premium non-negative and Quantity at least 1;
// legs are never mutated after construction.
type OptionLeg struct {
	Type     OptionType `json:"type"`
	Action   Action     `json:"action"`
	Strike   float64    `json:"strike"`
	Premium  float64    `json:"premium"`
	Quantity int        `json:"quantity"`
}

// Strategy is a named, ordered collection of legs. Leg order does not
// affect any computed value; payoff is a commutative sum over legs.
type Strategy struct {
	Name string      `json:"name"`
	Legs []OptionLeg `json:"legs"`
}

// CurvePoint is one sample of the payoff/greeks curve at a candidate
// underlying price.
type CurvePoint struct {
	Price  float64 `json:"price"`
	Payoff float64 `json:"payoff"`
	Delta  float64 `json:"delta"`
	Gamma  float64 `json:"gamma"`
	Theta  float64 `json:"theta"`
	Vega   float64 `json:"vega"`
}

// Curve is a finite sequence of samples sorted ascending by price.
type Curve []CurvePoint

// StrategyStats summarizes a generated curve for display.
type StrategyStats struct {
	MaxProfit         float64   `json:"maxProfit"`
	MaxLoss           float64   `json:"maxLoss"`
	Breakeven         []float64 `json:"breakeven"`
	ProfitProbability float64   `json:"profitProbability"`
}
