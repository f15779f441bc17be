package strategy

import (
	"testing"

	"optionviz/models"
)

func TestGenerateCurveShape(t *testing.T) {
	s := LongCall(100, 100, 30, 5)
	curve := GenerateCurve(s, 100, 0)

	if len(curve) != 201 {
		t.Fatalf("curve has %d points, want 201", len(curve))
	}
	if !almostEqual(curve[0].Price, 85, 1e-9) {
		t.Errorf("first price = %.4f, want 85", curve[0].Price)
	}
	if !almostEqual(curve[len(curve)-1].Price, 115, 1e-9) {
		t.Errorf("last price = %.4f, want 115", curve[len(curve)-1].Price)
	}

	for i := 1; i < len(curve); i++ {
		if curve[i].Price <= curve[i-1].Price {
			t.Fatalf("prices not strictly ascending at index %d", i)
		}
	}

	// 200 equal intervals.
	step := curve[1].Price - curve[0].Price
	if !almostEqual(step, 0.15, 1e-9) {
		t.Errorf("step = %.6f, want 0.15", step)
	}
}

func TestGenerateCurveCustomRange(t *testing.T) {
	s := LongCall(100, 100, 30, 5)
	curve := GenerateCurve(s, 200, 0.5)

	if !almostEqual(curve[0].Price, 100, 1e-9) {
		t.Errorf("first price = %.4f, want 100", curve[0].Price)
	}
	if !almostEqual(curve[len(curve)-1].Price, 300, 1e-9) {
		t.Errorf("last price = %.4f, want 300", curve[len(curve)-1].Price)
	}
}

func TestGenerateCurveValuesMatchEngine(t *testing.T) {
	s := LongStraddle(100, 100, 30, 5, 4)
	curve := GenerateCurve(s, 100, 0.15)

	for _, i := range []int{0, 50, 100, 150, 200} {
		pt := curve[i]
		if want := StrategyPayoff(s, pt.Price); !almostEqual(pt.Payoff, want, 1e-9) {
			t.Errorf("payoff at %.4f = %.4f, want %.4f", pt.Price, pt.Payoff, want)
		}
		if want := Delta(s, pt.Price, 100); !almostEqual(pt.Delta, want, 1e-12) {
			t.Errorf("delta at %.4f = %.6f, want %.6f", pt.Price, pt.Delta, want)
		}
		// The charting horizon is the fixed 30-day default.
		if want := Theta(s, pt.Price, 100, 30); !almostEqual(pt.Theta, want, 1e-12) {
			t.Errorf("theta at %.4f = %.6f, want %.6f", pt.Price, pt.Theta, want)
		}
		if want := Vega(s, pt.Price, 100, 30); !almostEqual(pt.Vega, want, 1e-12) {
			t.Errorf("vega at %.4f = %.6f, want %.6f", pt.Price, pt.Vega, want)
		}
	}
}

func TestGenerateCurveEmptyStrategy(t *testing.T) {
	curve := GenerateCurve(models.Strategy{Name: "Empty"}, 100, 0.15)

	if len(curve) != 201 {
		t.Fatalf("curve has %d points, want 201", len(curve))
	}
	for _, pt := range curve {
		if pt.Payoff != 0 || pt.Delta != 0 {
			t.Fatalf("empty strategy has nonzero values at %.4f", pt.Price)
		}
	}
}
