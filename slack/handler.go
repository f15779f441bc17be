package slackbot

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"optionviz/tradier"
)

type Handler struct {
	helpHandler   *HelpHandler
	payoffHandler *PayoffHandler
}

func NewHandler(market *tradier.Client) *Handler {
	return &Handler{
		helpHandler:   NewHelpHandler(),
		payoffHandler: NewPayoffHandler(market),
	}
}

func (h *Handler) Handle(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	switch data.Command {
	case "/help":
		if err := h.helpHandler.HandleCommand(evt, client); err != nil {
			return err
		}
	case "/payoff":
		if err := h.payoffHandler.HandleCommand(evt, client); err != nil {
			return err
		}
	}

	client.Ack(*evt.Request)
	return nil
}
