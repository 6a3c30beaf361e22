package main

import (
	"context"
	"encoding/json"
	"fmt"

	"fpl-recommend/internal/fetch"
	"fpl-recommend/internal/insights"
)

type TeamFixtureDifficultyArgs struct {
	TeamID        int `json:"team_id" jsonschema:"Premier League team id (required)"`
	UpcomingGames int `json:"upcoming_games,omitempty" jsonschema:"Fixtures to look ahead (default 5)"`
}

type TeamFixtureDifficultyOutput struct {
	TeamID        int                     `json:"team_id"`
	TeamShort     string                  `json:"team_short,omitempty"`
	UpcomingGames int                     `json:"upcoming_games"`
	Difficulty    int                     `json:"difficulty"`
	Fixtures      []FixtureDifficultyItem `json:"fixtures"`
}

type FixtureDifficultyItem struct {
	FixtureID     int    `json:"fixture_id"`
	Event         *int   `json:"event"`
	OpponentID    int    `json:"opponent_id"`
	OpponentShort string `json:"opponent_short,omitempty"`
	Venue         string `json:"venue"`
	Difficulty    int    `json:"difficulty"`
}

func buildTeamFixtureDifficulty(ctx context.Context, f fetch.Fetcher, args TeamFixtureDifficultyArgs) ([]byte, error) {
	if args.TeamID == 0 {
		return nil, fmt.Errorf("team_id is required")
	}
	h := orDefault(args.UpcomingGames, insights.DefaultUpcomingGames)

	bootstrap, err := f.Bootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch bootstrap-static: %w", err)
	}
	fixtures, err := f.Fixtures(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}
	teamShort := bootstrap.TeamShortNames()

	upcoming := insights.UpcomingFixtures(args.TeamID, fixtures, h)
	items := make([]FixtureDifficultyItem, 0, len(upcoming))
	for _, fx := range upcoming {
		item := FixtureDifficultyItem{
			FixtureID:  fx.ID,
			Event:      fx.Event,
			Difficulty: fx.DifficultyFor(args.TeamID),
		}
		if fx.TeamH == args.TeamID {
			item.OpponentID = fx.TeamA
			item.Venue = "HOME"
		} else {
			item.OpponentID = fx.TeamH
			item.Venue = "AWAY"
		}
		item.OpponentShort = teamShort[item.OpponentID]
		items = append(items, item)
	}

	out := TeamFixtureDifficultyOutput{
		TeamID:        args.TeamID,
		TeamShort:     teamShort[args.TeamID],
		UpcomingGames: h,
		Difficulty:    insights.FixtureDifficulty(args.TeamID, fixtures, h),
		Fixtures:      items,
	}
	return json.MarshalIndent(out, "", "  ")
}
