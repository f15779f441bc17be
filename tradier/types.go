package tradier

// Expiration is one available expiration for a symbol, with its strike
// ladder. Timestamp is the expiration date as Unix epoch seconds.
type Expiration struct {
	Date      string    `json:"date"`
	Timestamp int64     `json:"timestamp"`
	Strikes   []float64 `json:"strikes"`
}

// OptionQuote is one row of an option chain. Mid is (Bid+Ask)/2, zero
// when either side is missing.
type OptionQuote struct {
	Symbol     string  `json:"symbol"`
	Strike     float64 `json:"strike"`
	Bid        float64 `json:"bid"`
	Ask        float64 `json:"ask"`
	Mid        float64 `json:"mid"`
	OptionType string  `json:"option_type"`
	Expiration string  `json:"expiration_date"`
}

// Chain pairs a symbol's calls and puts for one expiration with the
// underlying reference price, the inputs the analytics layer needs.
type Chain struct {
	Symbol     string        `json:"symbol"`
	Expiration string        `json:"expiration"`
	Underlying float64       `json:"underlying"`
	Calls      []OptionQuote `json:"calls"`
	Puts       []OptionQuote `json:"puts"`
}

// Wire formats for the provider's responses. Only the fields the
// analytics layer consumes are decoded.

type expirationsResponse struct {
	Expirations struct {
		Expiration []struct {
			Date    string `json:"date"`
			Strikes struct {
				Strike []float64 `json:"strike"`
			} `json:"strikes"`
		} `json:"expiration"`
	} `json:"expirations"`
}

type chainResponse struct {
	Options struct {
		Option []struct {
			Symbol         string  `json:"symbol"`
			Strike         float64 `json:"strike"`
			Bid            float64 `json:"bid"`
			Ask            float64 `json:"ask"`
			OptionType     string  `json:"option_type"`
			ExpirationDate string  `json:"expiration_date"`
		} `json:"option"`
	} `json:"options"`
}

type quotesResponse struct {
	Quotes struct {
		Quote struct {
			Symbol string  `json:"symbol"`
			Last   float64 `json:"last"`
		} `json:"quote"`
	} `json:"quotes"`
}
