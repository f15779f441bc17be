package tradier

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/xhhuango/json"
)

const defaultBaseURL = "https://api.tradier.com"

// Client is a read-only Tradier market-data client. The zero value is
// not usable; construct with New.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// New returns a Client authenticating with the given bearer token.
func New(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewWithBaseURL is New with a custom endpoint, used by tests.
func NewWithBaseURL(token, baseURL string) *Client {
	c := New(token)
	c.baseURL = baseURL
	return c
}

func (c *Client) get(path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Add("Authorization", "Bearer "+c.token)
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response from %s: %w", path, err)
	}
	return nil
}

// GetExpirations fetches the available expirations for a symbol, with
// strike ladders and Unix epoch timestamps, in chronological order.
func (c *Client) GetExpirations(symbol string) ([]Expiration, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("includeAllRoots", "true")
	query.Set("strikes", "true")

	var resp expirationsResponse
	if err := c.get("/v1/markets/options/expirations", query, &resp); err != nil {
		return nil, err
	}

	expirations := make([]Expiration, 0, len(resp.Expirations.Expiration))
	for _, e := range resp.Expirations.Expiration {
		t, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse expiration date %q: %w", e.Date, err)
		}
		expirations = append(expirations, Expiration{
			Date:      e.Date,
			Timestamp: t.Unix(),
			Strikes:   e.Strikes.Strike,
		})
	}
	return expirations, nil
}

// GetUnderlyingPrice fetches the last traded price for a symbol.
func (c *Client) GetUnderlyingPrice(symbol string) (float64, error) {
	query := url.Values{}
	query.Set("symbols", symbol)

	var resp quotesResponse
	if err := c.get("/v1/markets/quotes", query, &resp); err != nil {
		return 0, err
	}
	if resp.Quotes.Quote.Last <= 0 {
		return 0, fmt.Errorf("no quote available for %s", symbol)
	}
	return resp.Quotes.Quote.Last, nil
}

// GetChain fetches the option chain for one expiration, split into calls
// and puts, together with the underlying reference price.
func (c *Client) GetChain(symbol, expiration string) (*Chain, error) {
	underlying, err := c.GetUnderlyingPrice(symbol)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("expiration", expiration)

	var resp chainResponse
	if err := c.get("/v1/markets/options/chains", query, &resp); err != nil {
		return nil, err
	}

	chain := &Chain{
		Symbol:     symbol,
		Expiration: expiration,
		Underlying: underlying,
	}
	for _, o := range resp.Options.Option {
		quote := OptionQuote{
			Symbol:     o.Symbol,
			Strike:     o.Strike,
			Bid:        o.Bid,
			Ask:        o.Ask,
			OptionType: o.OptionType,
			Expiration: o.ExpirationDate,
		}
		if o.Bid > 0 && o.Ask > 0 {
			quote.Mid = (o.Bid + o.Ask) / 2
		}
		switch o.OptionType {
		case "call":
			chain.Calls = append(chain.Calls, quote)
		case "put":
			chain.Puts = append(chain.Puts, quote)
		}
	}
	return chain, nil
}

// MidPremium returns the mid quote for the option at the given strike,
// or 0 when the strike is not quoted. A zero return lets the strategy
// factory fall back to its synthetic premium estimator.
func MidPremium(quotes []OptionQuote, strike float64) float64 {
	for _, q := range quotes {
		if q.Strike == strike {
			return q.Mid
		}
	}
	return 0
}

// ATMStrikes picks the strike closest to spot and the next strike above
// it. ok is false when the ladder has no strike above the at-the-money
// one.
func ATMStrikes(strikes []float64, spot float64) (atm, next float64, ok bool) {
	if len(strikes) == 0 {
		return 0, 0, false
	}

	sorted := make([]float64, len(strikes))
	copy(sorted, strikes)
	sort.Float64s(sorted)

	atmIndex := 0
	best := math.Inf(1)
	for i, k := range sorted {
		if d := math.Abs(k - spot); d < best {
			best = d
			atmIndex = i
		}
	}
	if atmIndex+1 >= len(sorted) {
		return 0, 0, false
	}
	return sorted[atmIndex], sorted[atmIndex+1], true
}
