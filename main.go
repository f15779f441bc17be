package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/xhhuango/json"

	"optionviz/api"
	"optionviz/logging"
	"optionviz/scan"
	slackbot "optionviz/slack"
	"optionviz/tradier"
)

func main() {
	serveAddr := flag.String("serve", "", "serve the HTTP API on this address (e.g. :8080)")
	scanSymbol := flag.String("scan", "", "scan every strategy template for this symbol")
	scanOut := flag.String("out", "scan_results.json", "output file for -scan results")
	runSlack := flag.Bool("slack", false, "run the slack slash-command bot")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	cfg := logging.DefaultConfig()
	cfg.Level = *logLevel
	log := logging.New(cfg)

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on the environment")
	}

	var market *tradier.Client
	if token := os.Getenv("TRADIER_KEY"); token != "" {
		market = tradier.New(token)
	}

	switch {
	case *scanSymbol != "":
		if market == nil {
			log.Fatal().Msg("TRADIER_KEY is required for -scan")
		}

		results, err := scan.Run(market, *scanSymbol, log)
		if err != nil {
			log.Fatal().Err(err).Msg("scan failed")
		}
		if len(results) > 10 {
			results = results[:10]
		}

		out, err := json.Marshal(results)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to marshal scan results")
		}
		if err := os.WriteFile(*scanOut, out, 0o644); err != nil {
			log.Fatal().Err(err).Str("file", *scanOut).Msg("failed to write scan results")
		}
		log.Info().Int("results", len(results)).Str("file", *scanOut).Msg("scan complete")

	case *runSlack:
		if market == nil {
			log.Fatal().Msg("TRADIER_KEY is required for -slack")
		}
		appToken := os.Getenv("SLACK_APP_TOKEN")
		botToken := os.Getenv("SLACK_BOT_TOKEN")
		if appToken == "" || botToken == "" {
			log.Fatal().Msg("SLACK_APP_TOKEN and SLACK_BOT_TOKEN are required for -slack")
		}

		bot := slackbot.NewSlackBot(appToken, botToken, market)
		if err := bot.Start(); err != nil {
			log.Fatal().Err(err).Msg("slack bot stopped")
		}

	default:
		addr := *serveAddr
		if addr == "" {
			addr = ":8080"
		}
		server := api.NewServer(market, log)
		if err := server.Run(addr); err != nil {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}
}
