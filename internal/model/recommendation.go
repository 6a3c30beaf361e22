package model

type Recommendation struct {
	ElementID         int      `json:"element"`
	Name              string   `json:"name"`
	TeamID            int      `json:"team_id"`
	TeamShort         string   `json:"team_short,omitempty"`
	Position          Position `json:"position_type"`
	Price             float64  `json:"price"`
	Form              float64  `json:"form"`
	PointsPerGame     float64  `json:"points_per_game"`
	FixtureDifficulty int      `json:"fixture_difficulty"`
	Score             float64  `json:"score"`
}
