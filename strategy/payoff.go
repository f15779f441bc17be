package strategy

import (
	"math"

	"optionviz/models"
)

// ContractMultiplier converts per-unit payoff to per-contract payoff.
// One contract covers 100 underlying units.
const ContractMultiplier = 100.0

// IntrinsicValue is the payoff an option would have if exercised
// immediately, ignoring any premium paid.
func IntrinsicValue(optionType models.OptionType, strike, underlyingPrice float64) float64 {
	if optionType == models.Call {
		return math.Max(0, underlyingPrice-strike)
	}
	return math.Max(0, strike-underlyingPrice)
}

// LegPayoff computes the exact expiration profit/loss of a single leg at
// the given underlying price. A long leg contributes +intrinsic - premium
// per unit, a short leg the negation; the result is scaled by quantity
// and the contract multiplier.
func LegPayoff(leg models.OptionLeg, underlyingPrice float64) float64 {
	intrinsic := IntrinsicValue(leg.Type, leg.Strike, underlyingPrice)
	return leg.Action.Sign() * (intrinsic - leg.Premium) * float64(leg.Quantity) * ContractMultiplier
}

// StrategyPayoff is the sum of LegPayoff over all legs.
func StrategyPayoff(s models.Strategy, underlyingPrice float64) float64 {
	var total float64
	for _, leg := range s.Legs {
		total += LegPayoff(leg, underlyingPrice)
	}
	return total
}
