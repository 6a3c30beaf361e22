package insights

import "fpl-recommend/internal/model"

// DefaultUpcomingGames is the fixture lookahead used when none is given.
const DefaultUpcomingGames = 5

// FixtureDifficulty sums the difficulty ratings of the first `upcoming`
// fixtures involving teamID, taken in the order fixtures are given. The
// slice is not re-sorted by kickoff; the API order is authoritative.
// Returns 0 when the team has no fixtures.
func FixtureDifficulty(teamID int, fixtures []model.Fixture, upcoming int) int {
	if upcoming <= 0 {
		upcoming = DefaultUpcomingGames
	}

	sum := 0
	count := 0
	for _, f := range fixtures {
		if count >= upcoming {
			break
		}
		if !f.Involves(teamID) {
			continue
		}
		sum += f.DifficultyFor(teamID)
		count++
	}
	return sum
}

// UpcomingFixtures returns the first `upcoming` fixtures involving teamID
// in the order given.
func UpcomingFixtures(teamID int, fixtures []model.Fixture, upcoming int) []model.Fixture {
	if upcoming <= 0 {
		upcoming = DefaultUpcomingGames
	}

	out := make([]model.Fixture, 0, upcoming)
	for _, f := range fixtures {
		if len(out) >= upcoming {
			break
		}
		if f.Involves(teamID) {
			out = append(out, f)
		}
	}
	return out
}
