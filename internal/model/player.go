package model

// Position is the FPL element_type: 1=GK, 2=DEF, 3=MID, 4=FWD.
type Position int

const (
	Goalkeeper Position = 1
	Defender   Position = 2
	Midfielder Position = 3
	Forward    Position = 4
)

func (p Position) String() string {
	switch p {
	case Goalkeeper:
		return "GK"
	case Defender:
		return "DEF"
	case Midfielder:
		return "MID"
	case Forward:
		return "FWD"
	default:
		return "UNK"
	}
}

func (p Position) Valid() bool {
	return p >= Goalkeeper && p <= Forward
}

// StatusAvailable is the bootstrap status code for a fit, selectable player.
const StatusAvailable = "a"

// Player is the subset of a bootstrap-static element used for recommendations.
// NowCost is in tenths of a million (55 = 5.5m). Form is a decimal string
// and may be empty early in the season.
type Player struct {
	ID          int      `json:"id"`
	WebName     string   `json:"web_name"`
	ElementType Position `json:"element_type"`
	Team        int      `json:"team"`
	NowCost     int      `json:"now_cost"`
	Minutes     int      `json:"minutes"`
	TotalPoints int      `json:"total_points"`
	Form        string   `json:"form"`
	Status      string   `json:"status"`
}

func (p Player) Available() bool {
	return p.Status == StatusAvailable
}

// Price returns NowCost in millions.
func (p Player) Price() float64 {
	return float64(p.NowCost) / 10
}

type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// Bootstrap is the part of /bootstrap-static/ the pipeline consumes.
type Bootstrap struct {
	Elements []Player `json:"elements"`
	Teams    []Team   `json:"teams"`
}

// TeamShortNames maps team id to short name (ARS, CHE, ...).
func (b Bootstrap) TeamShortNames() map[int]string {
	out := make(map[int]string, len(b.Teams))
	for _, t := range b.Teams {
		out[t.ID] = t.ShortName
	}
	return out
}
