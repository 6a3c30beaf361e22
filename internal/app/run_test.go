package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"fpl-recommend/internal/fetch"
	"fpl-recommend/internal/insights"
	"fpl-recommend/internal/logging"
	"fpl-recommend/internal/model"
	"fpl-recommend/internal/present"
	"fpl-recommend/internal/prompt"
)

type fakeFetcher struct {
	bootstrap    model.Bootstrap
	fixtures     []model.Fixture
	bootstrapErr error
	fixturesErr  error
	calls        []string
}

func (f *fakeFetcher) Bootstrap(ctx context.Context) (model.Bootstrap, error) {
	f.calls = append(f.calls, "bootstrap")
	return f.bootstrap, f.bootstrapErr
}

func (f *fakeFetcher) Fixtures(ctx context.Context) ([]model.Fixture, error) {
	f.calls = append(f.calls, "fixtures")
	return f.fixtures, f.fixturesErr
}

type recordingPresenter struct {
	got   []model.Recommendation
	shown bool
}

func (r *recordingPresenter) Display(recs []model.Recommendation) error {
	r.got = recs
	r.shown = true
	return nil
}

func sampleFetcher() *fakeFetcher {
	return &fakeFetcher{
		bootstrap: model.Bootstrap{
			Elements: []model.Player{
				{ID: 1, WebName: "Solo", ElementType: model.Defender, Form: "", Minutes: 450, TotalPoints: 50, Status: "a", NowCost: 50, Team: 1},
				{ID: 2, WebName: "Striker", ElementType: model.Forward, Form: "6.0", Minutes: 900, TotalPoints: 80, Status: "a", NowCost: 80, Team: 2},
				{ID: 3, WebName: "Blank", ElementType: model.Defender, Form: "9.0", Minutes: 900, TotalPoints: 80, Status: "a", NowCost: 40, Team: 7},
			},
			Teams: []model.Team{{ID: 1, ShortName: "ARS"}, {ID: 2, ShortName: "CHE"}},
		},
		fixtures: []model.Fixture{
			{TeamH: 1, TeamA: 2, TeamHDifficulty: 3, TeamADifficulty: 4},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	var out bytes.Buffer
	f := sampleFetcher()

	err := Run(context.Background(), Deps{
		Input:     &prompt.Collector{In: strings.NewReader("\n\n"), Out: &bytes.Buffer{}},
		Fetcher:   f,
		Presenter: present.Text{W: &out},
		Log:       logging.Discard(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 lines, got:\n%s", out.String())
	}
	if !strings.HasPrefix(lines[1], "Player: Striker,") || !strings.HasPrefix(lines[2], "Player: Solo,") {
		t.Errorf("unexpected order:\n%s", out.String())
	}
	if lines[2] != "Player: Solo, Price: 5.0m, Form: 0.0, Points/Game: 10.00, Fixture Difficulty: 3, Score: 3.33" {
		t.Errorf("unexpected line: %q", lines[2])
	}
	if strings.Join(f.calls, ",") != "bootstrap,fixtures" {
		t.Errorf("calls = %v", f.calls)
	}
}

func TestRunAppliesPromptFilters(t *testing.T) {
	pos := model.Defender
	price := 7.5
	p := &recordingPresenter{}

	err := Run(context.Background(), Deps{
		Input:     prompt.Fixed{Position: &pos, MaxPrice: &price},
		Fetcher:   sampleFetcher(),
		Presenter: p,
		Settings:  Settings{NumPlayers: 5, UpcomingGames: 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.got) != 1 || p.got[0].Name != "Solo" {
		t.Fatalf("unexpected recs: %+v", p.got)
	}
	if p.got[0].TeamShort != "ARS" {
		t.Errorf("team short = %q", p.got[0].TeamShort)
	}
}

func TestRunInputErrorSkipsFetch(t *testing.T) {
	f := sampleFetcher()
	p := &recordingPresenter{}
	err := Run(context.Background(), Deps{
		Input:     &prompt.Collector{In: strings.NewReader("GK\n"), Out: &bytes.Buffer{}},
		Fetcher:   f,
		Presenter: p,
	})
	var pe *prompt.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected prompt.ParseError, got %v", err)
	}
	if len(f.calls) != 0 || p.shown {
		t.Errorf("pipeline continued after input error: calls=%v shown=%v", f.calls, p.shown)
	}
}

func TestRunFetchErrorsAbort(t *testing.T) {
	netErr := &fetch.NetworkError{URL: "http://x/bootstrap-static/", StatusCode: 503}
	parseErr := &fetch.ParseError{URL: "http://x/fixtures/", Err: errors.New("bad json")}

	tests := []struct {
		name  string
		setup func(f *fakeFetcher)
		check func(error) bool
	}{
		{
			name:  "BootstrapNetwork",
			setup: func(f *fakeFetcher) { f.bootstrapErr = netErr },
			check: fetch.IsNetworkError,
		},
		{
			name:  "FixturesParse",
			setup: func(f *fakeFetcher) { f.fixturesErr = parseErr },
			check: fetch.IsParseError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := sampleFetcher()
			tc.setup(f)
			p := &recordingPresenter{}
			err := Run(context.Background(), Deps{
				Input:     prompt.Fixed{},
				Fetcher:   f,
				Presenter: p,
				Log:       logging.Discard(),
			})
			if !tc.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.shown {
				t.Error("presenter called after fetch failure")
			}
		})
	}
}

func TestShortlistReportsZeroDifficulty(t *testing.T) {
	_, report, err := Shortlist(context.Background(), sampleFetcher(), insights.Options{}, logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.SkippedZeroDifficulty) != 1 || report.SkippedZeroDifficulty[0] != 3 {
		t.Errorf("skipped = %v, want [3]", report.SkippedZeroDifficulty)
	}
}
