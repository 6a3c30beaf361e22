package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"fpl-recommend/internal/fetch"
	"fpl-recommend/internal/insights"
	"fpl-recommend/internal/model"
	"fpl-recommend/internal/present"
	"fpl-recommend/internal/prompt"
)

type InputSource interface {
	Collect() (prompt.Input, error)
}

// Settings are the knobs that do not come from the interactive prompts.
type Settings struct {
	NumPlayers    int
	UpcomingGames int
	MinGames      int
}

type Deps struct {
	Input     InputSource
	Fetcher   fetch.Fetcher
	Presenter present.Presenter
	Log       *logrus.Entry
	Settings  Settings
}

// Run collects filters, fetches players and fixtures, ranks and displays
// the shortlist. Any error aborts the run.
func Run(ctx context.Context, d Deps) error {
	in, err := d.Input.Collect()
	if err != nil {
		return fmt.Errorf("read filters: %w", err)
	}

	opts := insights.Options{
		Criteria: insights.Criteria{
			Position: in.Position,
			MaxPrice: in.MaxPrice,
			MinGames: d.Settings.MinGames,
		},
		NumPlayers:    d.Settings.NumPlayers,
		UpcomingGames: d.Settings.UpcomingGames,
	}

	recs, _, err := Shortlist(ctx, d.Fetcher, opts, d.Log)
	if err != nil {
		return err
	}

	if err := d.Presenter.Display(recs); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// Shortlist fetches bootstrap and fixtures and returns the ranked picks.
func Shortlist(ctx context.Context, f fetch.Fetcher, opts insights.Options, log *logrus.Entry) ([]model.Recommendation, insights.Report, error) {
	bootstrap, err := f.Bootstrap(ctx)
	if err != nil {
		return nil, insights.Report{}, fmt.Errorf("fetch bootstrap-static: %w", err)
	}
	fixtures, err := f.Fixtures(ctx)
	if err != nil {
		return nil, insights.Report{}, fmt.Errorf("fetch fixtures: %w", err)
	}

	if opts.TeamShort == nil {
		opts.TeamShort = bootstrap.TeamShortNames()
	}

	recs, report := insights.Recommend(bootstrap.Elements, fixtures, opts)
	if log != nil {
		entry := log.WithFields(logrus.Fields{
			"players":     report.Players,
			"filtered":    report.Filtered,
			"unavailable": report.Unavailable,
			"ranked":      report.Ranked,
			"fixtures":    len(fixtures),
		})
		if len(report.SkippedZeroDifficulty) > 0 {
			entry.WithField("elements", report.SkippedZeroDifficulty).
				Warn("skipped players with zero fixture difficulty")
		}
		entry.Info("ranked players")
	}
	return recs, report, nil
}
