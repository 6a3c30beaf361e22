package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"fpl-recommend/internal/app"
	"fpl-recommend/internal/fetch"
	"fpl-recommend/internal/insights"
	"fpl-recommend/internal/model"
)

type RecommendPlayersArgs struct {
	Position      *int     `json:"position,omitempty" jsonschema:"Position 1=GK 2=DEF 3=MID 4=FWD (omit for all)"`
	MaxPrice      *float64 `json:"max_price,omitempty" jsonschema:"Maximum price in millions (omit for no limit)"`
	NumPlayers    int      `json:"num_players,omitempty" jsonschema:"How many players to return (default 5)"`
	UpcomingGames int      `json:"upcoming_games,omitempty" jsonschema:"Fixtures to look ahead per team (default 5)"`
	MinGames      int      `json:"min_games,omitempty" jsonschema:"Minimum full games (90 min) played (default 5)"`
}

type RecommendPlayersOutput struct {
	GeneratedAtUTC  string                 `json:"generated_at_utc"`
	Position        string                 `json:"position,omitempty"`
	MaxPrice        *float64               `json:"max_price,omitempty"`
	NumPlayers      int                    `json:"num_players"`
	UpcomingGames   int                    `json:"upcoming_games"`
	MinGames        int                    `json:"min_games"`
	Report          insights.Report        `json:"report"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

func buildRecommendPlayers(ctx context.Context, f fetch.Fetcher, args RecommendPlayersArgs, log *logrus.Entry) ([]byte, error) {
	opts := insights.Options{
		Criteria: insights.Criteria{
			MaxPrice: args.MaxPrice,
			MinGames: orDefault(args.MinGames, insights.DefaultMinGames),
		},
		NumPlayers:    orDefault(args.NumPlayers, insights.DefaultNumPlayers),
		UpcomingGames: orDefault(args.UpcomingGames, insights.DefaultUpcomingGames),
	}
	out := RecommendPlayersOutput{
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		MaxPrice:       args.MaxPrice,
		NumPlayers:     opts.NumPlayers,
		UpcomingGames:  opts.UpcomingGames,
		MinGames:       opts.MinGames,
	}
	if args.Position != nil {
		pos := model.Position(*args.Position)
		if !pos.Valid() {
			return nil, fmt.Errorf("position must be 1-4, got %d", *args.Position)
		}
		opts.Position = &pos
		out.Position = pos.String()
	}

	recs, report, err := app.Shortlist(ctx, f, opts, log)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []model.Recommendation{}
	}
	out.Report = report
	out.Recommendations = recs
	return json.MarshalIndent(out, "", "  ")
}

func orDefault(v int, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
