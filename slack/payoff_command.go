package slackbot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"optionviz/strategy"
	"optionviz/tradier"
)

type PayoffHandler struct {
	market *tradier.Client
}

func NewPayoffHandler(market *tradier.Client) *PayoffHandler {
	return &PayoffHandler{market: market}
}

func (h *PayoffHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	args := strings.Fields(data.Text)

	if len(args) < 2 || len(args) > 3 {
		_, _, err := client.PostMessage(data.ChannelID,
			slack.MsgOptionText("Usage: /payoff <symbol> <template> [minDTE]", false))
		return err
	}

	symbol := strings.ToUpper(args[0])
	template := args[1]
	minDTE := 30.0
	if len(args) == 3 {
		minDTE, _ = strconv.ParseFloat(args[2], 64)
	}

	_, ts, err := client.PostMessage(data.ChannelID,
		slack.MsgOptionText(fmt.Sprintf("Analyzing %s %s...", symbol, template), false))
	if err != nil {
		return err
	}

	go func() {
		result := h.analyze(symbol, template, minDTE)
		client.PostMessage(data.ChannelID,
			slack.MsgOptionText(result, false),
			slack.MsgOptionTS(ts))
	}()

	return nil
}

// analyze builds the template at the at-the-money strikes of the first
// expiration at least minDTE days out and formats its summary stats.
func (h *PayoffHandler) analyze(symbol, template string, minDTE float64) string {
	expirations, err := h.market.GetExpirations(symbol)
	if err != nil {
		return fmt.Sprintf("Failed to fetch expirations for %s: %s", symbol, err)
	}

	now := time.Now()
	for _, exp := range expirations {
		dte := time.Unix(exp.Timestamp, 0).Sub(now).Hours() / 24
		if dte < minDTE {
			continue
		}

		chain, err := h.market.GetChain(symbol, exp.Date)
		if err != nil {
			return fmt.Sprintf("Failed to fetch chain for %s %s: %s", symbol, exp.Date, err)
		}

		atm, next, ok := tradier.ATMStrikes(exp.Strikes, chain.Underlying)
		if !ok {
			continue
		}

		premium, premium2 := strategy.QuotePremiums(template,
			tradier.MidPremium(chain.Calls, atm),
			tradier.MidPremium(chain.Puts, atm),
			tradier.MidPremium(chain.Calls, next))
		built, err := strategy.Build(template, atm, next, chain.Underlying, dte, premium, premium2)
		if err != nil {
			return fmt.Sprintf("Unknown template %q. Try /help.", template)
		}

		curve := strategy.GenerateCurve(built, chain.Underlying, strategy.DefaultPriceRange)
		stats := strategy.ExtractStats(curve)

		breakevens := make([]string, len(stats.Breakeven))
		for i, b := range stats.Breakeven {
			breakevens[i] = fmt.Sprintf("%.2f", b)
		}

		return fmt.Sprintf(
			"%s %s (exp %s, %.0f DTE, spot %.2f)\nMax Profit: %.2f\nMax Loss: %.2f\nBreakeven: %s\nProfit Probability: %.1f%%",
			symbol, built.Name, exp.Date, dte, chain.Underlying,
			stats.MaxProfit, stats.MaxLoss,
			strings.Join(breakevens, ", "), stats.ProfitProbability)
	}

	return fmt.Sprintf("No expiration at least %.0f days out for %s", minDTE, symbol)
}
