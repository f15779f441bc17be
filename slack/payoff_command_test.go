package slackbot

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"optionviz/tradier"
)

const botChainBody = `{
	"options": {
		"option": [
			{"symbol": "SPY260101C00100000", "strike": 100, "bid": 4.5, "ask": 5.5, "option_type": "call", "expiration_date": "2026-01-01"},
			{"symbol": "SPY260101P00100000", "strike": 100, "bid": 3.5, "ask": 4.5, "option_type": "put", "expiration_date": "2026-01-01"},
			{"symbol": "SPY260101C00110000", "strike": 110, "bid": 1.5, "ask": 2.5, "option_type": "call", "expiration_date": "2026-01-01"}
		]
	}
}`

func newMarketServer(t *testing.T, expirationDate string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/markets/options/expirations", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"expirations": {"expiration": [{"date": %q, "strikes": {"strike": [100, 110]}}]}}`, expirationDate)
	})
	mux.HandleFunc("/v1/markets/options/chains", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(botChainBody))
	})
	mux.HandleFunc("/v1/markets/quotes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quotes": {"quote": {"symbol": "SPY", "last": 100}}}`))
	})
	return httptest.NewServer(mux)
}

// A straddle's debit is the ATM call mid plus the ATM put mid (5 + 4
// here), so max loss is -900 and the breakevens sit at 91 and 109. A
// handler that pairs two call quotes instead reports a 7 debit.
func TestAnalyzeStraddleUsesPutMid(t *testing.T) {
	date := time.Now().AddDate(0, 0, 45).Format("2006-01-02")
	ts := newMarketServer(t, date)
	defer ts.Close()

	h := NewPayoffHandler(tradier.NewWithBaseURL("test-token", ts.URL))
	reply := h.analyze("SPY", "long-straddle", 30)

	if !strings.Contains(reply, "Max Loss: -900.00") {
		t.Errorf("reply = %q, want max loss -900.00", reply)
	}
	if !strings.Contains(reply, "Breakeven: 91.00, 109.00") {
		t.Errorf("reply = %q, want breakevens 91.00, 109.00", reply)
	}
	if !strings.Contains(reply, "Max Profit: 600.00") {
		t.Errorf("reply = %q, want max profit 600.00", reply)
	}
}

func TestAnalyzeLongPutUsesPutMid(t *testing.T) {
	date := time.Now().AddDate(0, 0, 45).Format("2006-01-02")
	ts := newMarketServer(t, date)
	defer ts.Close()

	h := NewPayoffHandler(tradier.NewWithBaseURL("test-token", ts.URL))
	reply := h.analyze("SPY", "long-put", 30)

	// ATM put mid is 4.0, so the worst case is the full debit.
	if !strings.Contains(reply, "Max Loss: -400.00") {
		t.Errorf("reply = %q, want max loss -400.00", reply)
	}
	if !strings.Contains(reply, "Breakeven: 96.00") {
		t.Errorf("reply = %q, want breakeven 96.00", reply)
	}
}

func TestAnalyzeUnknownTemplate(t *testing.T) {
	date := time.Now().AddDate(0, 0, 45).Format("2006-01-02")
	ts := newMarketServer(t, date)
	defer ts.Close()

	h := NewPayoffHandler(tradier.NewWithBaseURL("test-token", ts.URL))
	reply := h.analyze("SPY", "iron-butterfly", 30)

	if !strings.Contains(reply, "Unknown template") {
		t.Errorf("reply = %q, want an unknown-template message", reply)
	}
}

func TestAnalyzeNoFarEnoughExpiration(t *testing.T) {
	date := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	ts := newMarketServer(t, date)
	defer ts.Close()

	h := NewPayoffHandler(tradier.NewWithBaseURL("test-token", ts.URL))
	reply := h.analyze("SPY", "long-call", 30)

	if !strings.Contains(reply, "No expiration at least 30 days out") {
		t.Errorf("reply = %q, want a no-expiration message", reply)
	}
}
