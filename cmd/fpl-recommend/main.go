package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"fpl-recommend/internal/app"
	"fpl-recommend/internal/config"
	"fpl-recommend/internal/insights"
	"fpl-recommend/internal/logging"
	"fpl-recommend/internal/present"
	"fpl-recommend/internal/prompt"
)

func main() {
	cfg := config.Load()

	fs := flag.NewFlagSet("fpl-recommend", flag.ExitOnError)
	cfg.RegisterFlags(fs)
	var (
		numPlayers    = fs.Int("num-players", insights.DefaultNumPlayers, "how many players to recommend")
		upcomingGames = fs.Int("upcoming-games", insights.DefaultUpcomingGames, "fixtures to look ahead per team")
		minGames      = fs.Int("min-games", insights.DefaultMinGames, "minimum full games (90 min) played")
		format        = fs.String("format", "text", "output format: text|json")
		noPrompt      = fs.Bool("no-prompt", false, "skip the interactive prompts and use -position/-max-price")
		position      = fs.String("position", "", "position 1=GK 2=DEF 3=MID 4=FWD (with -no-prompt)")
		maxPrice      = fs.String("max-price", "", "maximum price in millions (with -no-prompt)")
	)
	fs.Parse(os.Args[1:])

	logger := logging.New(cfg.LogLevel, os.Stderr)
	log := logging.WithRun(logger, "cli")

	presenter, err := present.New(*format, os.Stdout)
	must(log, err)

	var input app.InputSource = &prompt.Collector{In: os.Stdin, Out: os.Stdout}
	if *noPrompt {
		fixed, err := fixedInput(*position, *maxPrice)
		must(log, err)
		input = fixed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = app.Run(ctx, app.Deps{
		Input:     input,
		Fetcher:   cfg.NewClient(log),
		Presenter: presenter,
		Log:       log,
		Settings: app.Settings{
			NumPlayers:    *numPlayers,
			UpcomingGames: *upcomingGames,
			MinGames:      *minGames,
		},
	})
	must(log, err)
}

func fixedInput(position string, maxPrice string) (prompt.Fixed, error) {
	pos, err := prompt.ParsePosition(position)
	if err != nil {
		return prompt.Fixed{}, err
	}
	price, err := prompt.ParseMaxPrice(maxPrice)
	if err != nil {
		return prompt.Fixed{}, err
	}
	return prompt.Fixed{Position: pos, MaxPrice: price}, nil
}

func must(log *logrus.Entry, err error) {
	if err != nil {
		log.WithError(err).Error("run failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
