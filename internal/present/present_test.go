package present

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fpl-recommend/internal/model"
)

func TestTextDisplay(t *testing.T) {
	var buf bytes.Buffer
	recs := []model.Recommendation{
		{Name: "Solo", Price: 5.0, Form: 0, PointsPerGame: 10, FixtureDifficulty: 3, Score: 10.0 / 3.0},
		{Name: "Saka", Price: 9.2, Form: 6.5, PointsPerGame: 6.0, FixtureDifficulty: 12, Score: 1.5833},
	}
	if err := (Text{W: &buf}).Display(recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Top Player Recommendations for Future Gameweeks:",
		"Player: Solo, Price: 5.0m, Form: 0.0, Points/Game: 10.00, Fixture Difficulty: 3, Score: 3.33",
		"Player: Saka, Price: 9.2m, Form: 6.5, Points/Game: 6.00, Fixture Difficulty: 12, Score: 1.58",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("output mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestTextDisplayEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (Text{W: &buf}).Display(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != header+"\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatForm(t *testing.T) {
	tests := map[float64]string{
		0:    "0.0",
		5.2:  "5.2",
		10:   "10.0",
		3.25: "3.25",
	}
	for in, want := range tests {
		if got := FormatForm(in); got != want {
			t.Errorf("FormatForm(%v)=%q want %q", in, got, want)
		}
	}
}

func TestJSONDisplay(t *testing.T) {
	var buf bytes.Buffer
	recs := []model.Recommendation{{ElementID: 7, Name: "Saka", TeamShort: "ARS", Price: 9.2, Score: 1.5}}
	if err := (JSON{W: &buf}).Display(recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Title           string `json:"title"`
		Recommendations []struct {
			Element   int     `json:"element"`
			Name      string  `json:"name"`
			TeamShort string  `json:"team_short"`
			Price     float64 `json:"price"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if doc.Title != header {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Recommendations) != 1 || doc.Recommendations[0].TeamShort != "ARS" || doc.Recommendations[0].Element != 7 {
		t.Errorf("unexpected recommendations: %+v", doc.Recommendations)
	}
}

func TestJSONDisplayEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSON{W: &buf}).Display(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"recommendations": []`) {
		t.Fatalf("expected empty array, got %s", buf.String())
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	if p, err := New("", &buf); err != nil {
		t.Fatalf("default: %v", err)
	} else if _, ok := p.(Text); !ok {
		t.Errorf("default presenter = %T, want Text", p)
	}
	if p, err := New("JSON", &buf); err != nil {
		t.Fatalf("json: %v", err)
	} else if _, ok := p.(JSON); !ok {
		t.Errorf("json presenter = %T, want JSON", p)
	}
	if _, err := New("yaml", &buf); err == nil {
		t.Error("expected error for unknown format")
	}
}
