package insights

import "fpl-recommend/internal/model"

const (
	DefaultMinGames = 5
	minutesPerGame  = 90
)

// Criteria narrows the player pool. Nil fields are unset and do not filter.
type Criteria struct {
	Position *model.Position
	MaxPrice *float64 // millions
	MinGames int      // 0 = DefaultMinGames
}

type Predicate func(model.Player) bool

// ByPosition keeps players whose element_type equals pos.
func ByPosition(pos model.Position) Predicate {
	return func(p model.Player) bool { return p.ElementType == pos }
}

// ByMaxPrice keeps players costing at most maxPrice millions.
func ByMaxPrice(maxPrice float64) Predicate {
	limit := maxPrice * 10
	return func(p model.Player) bool { return float64(p.NowCost) <= limit }
}

// ByMinGames keeps players with at least minGames full matches of minutes.
func ByMinGames(minGames int) Predicate {
	threshold := minGames * minutesPerGame
	return func(p model.Player) bool { return p.Minutes >= threshold }
}

func (c Criteria) predicates() []Predicate {
	preds := make([]Predicate, 0, 3)
	if c.Position != nil {
		preds = append(preds, ByPosition(*c.Position))
	}
	if c.MaxPrice != nil {
		preds = append(preds, ByMaxPrice(*c.MaxPrice))
	}
	minGames := c.MinGames
	if minGames <= 0 {
		minGames = DefaultMinGames
	}
	return append(preds, ByMinGames(minGames))
}

// FilterPlayers returns the players matching every criterion, in input order.
func FilterPlayers(players []model.Player, c Criteria) []model.Player {
	preds := c.predicates()
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if matchAll(p, preds) {
			out = append(out, p)
		}
	}
	return out
}

func matchAll(p model.Player, preds []Predicate) bool {
	for _, keep := range preds {
		if !keep(p) {
			return false
		}
	}
	return true
}
