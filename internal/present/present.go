package present

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fpl-recommend/internal/model"
)

const header = "Top Player Recommendations for Future Gameweeks:"

type Presenter interface {
	Display(recs []model.Recommendation) error
}

// Text writes one human-readable line per recommendation.
type Text struct {
	W io.Writer
}

func (t Text) Display(recs []model.Recommendation) error {
	if _, err := fmt.Fprintln(t.W, header); err != nil {
		return err
	}
	for _, r := range recs {
		_, err := fmt.Fprintf(t.W,
			"Player: %s, Price: %.1fm, Form: %s, Points/Game: %.2f, Fixture Difficulty: %d, Score: %.2f\n",
			r.Name, r.Price, FormatForm(r.Form), r.PointsPerGame, r.FixtureDifficulty, r.Score)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatForm prints the shortest exact decimal, always with a fractional
// part: 0 -> "0.0", 5.2 -> "5.2", 10 -> "10.0".
func FormatForm(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// JSON writes the shortlist as an indented JSON document.
type JSON struct {
	W io.Writer
}

type jsonDocument struct {
	Title           string                 `json:"title"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

func (j JSON) Display(recs []model.Recommendation) error {
	if recs == nil {
		recs = []model.Recommendation{}
	}
	enc := json.NewEncoder(j.W)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonDocument{Title: header, Recommendations: recs})
}

// New returns the presenter for format ("text" or "json").
func New(format string, w io.Writer) (Presenter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return Text{W: w}, nil
	case "json":
		return JSON{W: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text|json)", format)
	}
}
