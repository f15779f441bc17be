package strategy

import (
	"fmt"

	"optionviz/models"
)

// Template names accepted by Build.
const (
	TemplateLongCall       = "long-call"
	TemplateShortCall      = "short-call"
	TemplateLongPut        = "long-put"
	TemplateShortPut       = "short-put"
	TemplateBullCallSpread = "bull-call-spread"
	TemplateBearCallSpread = "bear-call-spread"
	TemplateLongStraddle   = "long-straddle"
)

// Templates lists every supported strategy template, in display order.
var Templates = []string{
	TemplateLongCall,
	TemplateShortCall,
	TemplateLongPut,
	TemplateShortPut,
	TemplateBullCallSpread,
	TemplateBearCallSpread,
	TemplateLongStraddle,
}

// newLeg builds a quantity-1 leg, filling the premium from
// EstimatePremium when the caller passes premium <= 0. The estimator
// floors at 0.05, so zero is never a real quote.
func newLeg(t models.OptionType, a models.Action, strike, currentPrice, daysToExpiration, premium float64) models.OptionLeg {
	if premium <= 0 {
		premium = EstimatePremium(t, strike, currentPrice, daysToExpiration)
	}
	return models.OptionLeg{
		Type:     t,
		Action:   a,
		Strike:   strike,
		Premium:  premium,
		Quantity: 1,
	}
}

// LongCall buys one call at the given strike. daysToExpiration <= 0
// defaults to 30; premium <= 0 is filled via EstimatePremium. The same
// conventions apply to every constructor below.
func LongCall(strike, currentPrice, daysToExpiration, premium float64) models.Strategy {
	return models.Strategy{
		Name: "Long Call",
		Legs: []models.OptionLeg{newLeg(models.Call, models.Buy, strike, currentPrice, daysToExpiration, premium)},
	}
}

// ShortCall sells one call at the given strike.
func ShortCall(strike, currentPrice, daysToExpiration, premium float64) models.Strategy {
	return models.Strategy{
		Name: "Short Call",
		Legs: []models.OptionLeg{newLeg(models.Call, models.Sell, strike, currentPrice, daysToExpiration, premium)},
	}
}

// LongPut buys one put at the given strike.
func LongPut(strike, currentPrice, daysToExpiration, premium float64) models.Strategy {
	return models.Strategy{
		Name: "Long Put",
		Legs: []models.OptionLeg{newLeg(models.Put, models.Buy, strike, currentPrice, daysToExpiration, premium)},
	}
}

// ShortPut sells one put at the given strike.
func ShortPut(strike, currentPrice, daysToExpiration, premium float64) models.Strategy {
	return models.Strategy{
		Name: "Short Put",
		Legs: []models.OptionLeg{newLeg(models.Put, models.Sell, strike, currentPrice, daysToExpiration, premium)},
	}
}

// BullCallSpread buys a call at lowerStrike and sells a call at
// upperStrike. longPremium and shortPremium follow the premium <= 0
// estimation convention independently.
func BullCallSpread(lowerStrike, upperStrike, currentPrice, daysToExpiration, longPremium, shortPremium float64) models.Strategy {
	return models.Strategy{
		Name: "Bull Call Spread",
		Legs: []models.OptionLeg{
			newLeg(models.Call, models.Buy, lowerStrike, currentPrice, daysToExpiration, longPremium),
			newLeg(models.Call, models.Sell, upperStrike, currentPrice, daysToExpiration, shortPremium),
		},
	}
}

// BearCallSpread sells a call at lowerStrike and buys a call at
// upperStrike.
func BearCallSpread(lowerStrike, upperStrike, currentPrice, daysToExpiration, shortPremium, longPremium float64) models.Strategy {
	return models.Strategy{
		Name: "Bear Call Spread",
		Legs: []models.OptionLeg{
			newLeg(models.Call, models.Sell, lowerStrike, currentPrice, daysToExpiration, shortPremium),
			newLeg(models.Call, models.Buy, upperStrike, currentPrice, daysToExpiration, longPremium),
		},
	}
}

// LongStraddle buys a call and a put at the same strike.
func LongStraddle(strike, currentPrice, daysToExpiration, callPremium, putPremium float64) models.Strategy {
	return models.Strategy{
		Name: "Long Straddle",
		Legs: []models.OptionLeg{
			newLeg(models.Call, models.Buy, strike, currentPrice, daysToExpiration, callPremium),
			newLeg(models.Put, models.Buy, strike, currentPrice, daysToExpiration, putPremium),
		},
	}
}

// QuotePremiums maps the mid quotes at the at-the-money strike (call
// and put) and at the next strike above (call) to the (premium,
// premium2) pair Build expects for the template. Put templates take the
// put mid, call spreads pair the two call mids, and the straddle pairs
// the ATM call with the ATM put. Unknown templates yield zeros, which
// Build rejects anyway.
func QuotePremiums(template string, atmCallMid, atmPutMid, nextCallMid float64) (premium, premium2 float64) {
	switch template {
	case TemplateLongCall, TemplateShortCall:
		return atmCallMid, 0
	case TemplateLongPut, TemplateShortPut:
		return atmPutMid, 0
	case TemplateBullCallSpread, TemplateBearCallSpread:
		return atmCallMid, nextCallMid
	case TemplateLongStraddle:
		return atmCallMid, atmPutMid
	}
	return 0, 0
}

// Build dispatches to the named template constructor. strike2 and
// premium2 are consumed only by the two-legged templates; for the
// straddle, premium and premium2 are the call and put premiums.
func Build(template string, strike, strike2, currentPrice, daysToExpiration, premium, premium2 float64) (models.Strategy, error) {
	switch template {
	case TemplateLongCall:
		return LongCall(strike, currentPrice, daysToExpiration, premium), nil
	case TemplateShortCall:
		return ShortCall(strike, currentPrice, daysToExpiration, premium), nil
	case TemplateLongPut:
		return LongPut(strike, currentPrice, daysToExpiration, premium), nil
	case TemplateShortPut:
		return ShortPut(strike, currentPrice, daysToExpiration, premium), nil
	case TemplateBullCallSpread:
		return BullCallSpread(strike, strike2, currentPrice, daysToExpiration, premium, premium2), nil
	case TemplateBearCallSpread:
		return BearCallSpread(strike, strike2, currentPrice, daysToExpiration, premium, premium2), nil
	case TemplateLongStraddle:
		return LongStraddle(strike, currentPrice, daysToExpiration, premium, premium2), nil
	}
	return models.Strategy{}, fmt.Errorf("unknown strategy template %q", template)
}
