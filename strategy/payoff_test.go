package strategy

import (
	"math"
	"testing"

	"optionviz/models"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLegPayoffLongCall(t *testing.T) {
	leg := models.OptionLeg{Type: models.Call, Action: models.Buy, Strike: 100, Premium: 5, Quantity: 1}

	tests := []struct {
		price float64
		want  float64
	}{
		{price: 80, want: -500},
		{price: 100, want: -500},
		{price: 105, want: 0},
		{price: 110, want: 500},
	}
	for _, tt := range tests {
		if got := LegPayoff(leg, tt.price); !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("LegPayoff at %.2f = %.2f, want %.2f", tt.price, got, tt.want)
		}
	}
}

func TestLegPayoffShortPut(t *testing.T) {
	leg := models.OptionLeg{Type: models.Put, Action: models.Sell, Strike: 100, Premium: 4, Quantity: 2}

	// Above the strike the put expires worthless and the full premium is
	// kept: +4 * 2 * 100.
	if got := LegPayoff(leg, 120); !almostEqual(got, 800, 1e-9) {
		t.Errorf("LegPayoff above strike = %.2f, want 800", got)
	}
	// At 90 the intrinsic value of 10 is borne by the seller.
	if got := LegPayoff(leg, 90); !almostEqual(got, -1200, 1e-9) {
		t.Errorf("LegPayoff below strike = %.2f, want -1200", got)
	}
}

func TestLegPayoffKinkAtStrike(t *testing.T) {
	leg := models.OptionLeg{Type: models.Call, Action: models.Buy, Strike: 100, Premium: 5, Quantity: 1}

	// Piecewise linear: constant slope on each side of the strike.
	const h = 0.25
	for _, base := range []float64{90, 95, 98} {
		left := (LegPayoff(leg, base+h) - LegPayoff(leg, base)) / h
		if !almostEqual(left, 0, 1e-9) {
			t.Errorf("slope below strike at %.2f = %.4f, want 0", base, left)
		}
	}
	for _, base := range []float64{101, 105, 110} {
		right := (LegPayoff(leg, base+h) - LegPayoff(leg, base)) / h
		if !almostEqual(right, 100, 1e-9) {
			t.Errorf("slope above strike at %.2f = %.4f, want 100", base, right)
		}
	}
}

func TestStrategyPayoffAdditivity(t *testing.T) {
	s := BullCallSpread(95, 105, 100, 30, 7, 3)

	for _, price := range []float64{80, 95, 100, 105, 120} {
		var sum float64
		for _, leg := range s.Legs {
			sum += LegPayoff(leg, price)
		}
		if got := StrategyPayoff(s, price); !almostEqual(got, sum, 1e-9) {
			t.Errorf("StrategyPayoff at %.2f = %.2f, want leg sum %.2f", price, got, sum)
		}
	}
}

func TestBullCallSpreadCapAndFloor(t *testing.T) {
	const (
		k1         = 95.0
		k2         = 105.0
		longPrem   = 7.0
		shortPrem  = 3.0
		netDebit   = longPrem - shortPrem
		capPayoff  = (k2 - k1 - netDebit) * 100
		floorValue = -netDebit * 100
	)
	s := BullCallSpread(k1, k2, 100, 30, longPrem, shortPrem)

	for _, price := range []float64{k2, 110, 150} {
		if got := StrategyPayoff(s, price); !almostEqual(got, capPayoff, 1e-9) {
			t.Errorf("payoff at %.2f = %.2f, want cap %.2f", price, got, capPayoff)
		}
	}
	for _, price := range []float64{50, 90, k1} {
		if got := StrategyPayoff(s, price); !almostEqual(got, floorValue, 1e-9) {
			t.Errorf("payoff at %.2f = %.2f, want floor %.2f", price, got, floorValue)
		}
	}
}
