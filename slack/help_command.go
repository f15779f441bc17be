package slackbot

import (
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"optionviz/strategy"
)

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)

	text := "Commands:\n" +
		"/payoff <symbol> <template> [minDTE] - payoff and greeks summary at the ATM strikes\n" +
		"/help - this message\n" +
		"Templates: " + strings.Join(strategy.Templates, ", ")

	_, _, err := client.PostMessage(data.ChannelID, slack.MsgOptionText(text, false))
	return err
}
