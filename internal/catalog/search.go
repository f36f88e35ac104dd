package catalog

import (
	"strings"

	"arcade-roulette-service/internal/domain/games"
)

// Filter narrows a game list; empty fields match everything.
type Filter struct {
	Category string
	Search   string // matches title, creator, description or any category
}

// Apply returns the subset of list matching every non-empty field, in order.
func (f Filter) Apply(list []games.Game) []games.Game {
	out := []games.Game{}
	for _, g := range list {
		if f.Category != "" && !HasCategory(g, f.Category) {
			continue
		}
		if f.Search != "" && !matchesSearch(g, f.Search) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// HasCategory reports whether g is tagged with category, ignoring case.
func HasCategory(g games.Game, category string) bool {
	for _, c := range g.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

func matchesSearch(g games.Game, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, field := range []string{g.Title, g.Creator, g.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, c := range g.Categories {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}
