package model

// Fixture is one entry of /fixtures/. Event is nil for postponed matches
// that have not been rescheduled into a gameweek.
type Fixture struct {
	ID              int  `json:"id"`
	Event           *int `json:"event"`
	TeamH           int  `json:"team_h"`
	TeamA           int  `json:"team_a"`
	TeamHDifficulty int  `json:"team_h_difficulty"`
	TeamADifficulty int  `json:"team_a_difficulty"`
	Finished        bool `json:"finished"`
	Started         bool `json:"started"`
}

// Involves reports whether teamID plays in f, home or away.
func (f Fixture) Involves(teamID int) bool {
	return f.TeamH == teamID || f.TeamA == teamID
}

// DifficultyFor returns the difficulty rating from teamID's side of the
// fixture, or 0 if the team does not play in it.
func (f Fixture) DifficultyFor(teamID int) int {
	switch teamID {
	case f.TeamH:
		return f.TeamHDifficulty
	case f.TeamA:
		return f.TeamADifficulty
	default:
		return 0
	}
}
