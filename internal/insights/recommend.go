package insights

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"fpl-recommend/internal/model"
)

const DefaultNumPlayers = 5

// ErrZeroDifficulty means a team has no fixture difficulty over the
// lookahead window, so the potential score is undefined.
var ErrZeroDifficulty = errors.New("fixture difficulty is zero")

type Options struct {
	Criteria
	NumPlayers    int // 0 = DefaultNumPlayers
	UpcomingGames int // 0 = DefaultUpcomingGames
	TeamShort     map[int]string
}

// Report counts what happened to the pool on the way to the shortlist.
type Report struct {
	Players               int   `json:"players"`
	Filtered              int   `json:"filtered"`
	Unavailable           int   `json:"unavailable"`
	Ranked                int   `json:"ranked"`
	SkippedZeroDifficulty []int `json:"skipped_zero_difficulty,omitempty"`
}

// ParseForm converts the API form string. Empty or unparsable form is 0.
func ParseForm(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// PointsPerGame is total points over games played, where a game is 90 minutes.
func PointsPerGame(p model.Player) float64 {
	games := float64(p.Minutes) / minutesPerGame
	if games <= 0 {
		return 0
	}
	return float64(p.TotalPoints) / games
}

// Score is (form*2 + ppg) / difficulty.
func Score(form float64, ppg float64, difficulty int) (float64, error) {
	if difficulty == 0 {
		return 0, ErrZeroDifficulty
	}
	return (form*2 + ppg) / float64(difficulty), nil
}

// Recommend filters players, scores the available ones against their team's
// upcoming fixtures and returns the top NumPlayers by score. Equal scores
// keep their filtered order. Players whose team has zero difficulty over
// the window are skipped and listed in the report.
func Recommend(players []model.Player, fixtures []model.Fixture, opts Options) ([]model.Recommendation, Report) {
	n := opts.NumPlayers
	if n <= 0 {
		n = DefaultNumPlayers
	}

	filtered := FilterPlayers(players, opts.Criteria)
	report := Report{Players: len(players), Filtered: len(filtered)}

	recs := make([]model.Recommendation, 0, len(filtered))
	for _, p := range filtered {
		if !p.Available() {
			report.Unavailable++
			continue
		}

		form := ParseForm(p.Form)
		ppg := PointsPerGame(p)
		difficulty := FixtureDifficulty(p.Team, fixtures, opts.UpcomingGames)
		score, err := Score(form, ppg, difficulty)
		if err != nil {
			report.SkippedZeroDifficulty = append(report.SkippedZeroDifficulty, p.ID)
			continue
		}

		recs = append(recs, model.Recommendation{
			ElementID:         p.ID,
			Name:              p.WebName,
			TeamID:            p.Team,
			TeamShort:         opts.TeamShort[p.Team],
			Position:          p.ElementType,
			Price:             p.Price(),
			Form:              form,
			PointsPerGame:     ppg,
			FixtureDifficulty: difficulty,
			Score:             score,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	report.Ranked = len(recs)
	if len(recs) > n {
		recs = recs[:n]
	}
	return recs, report
}
