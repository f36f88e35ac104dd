package catalog

import (
	"errors"
	"fmt"
	"strings"

	"arcade-roulette-service/internal/domain/games"
)

var (
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate game id")
	// ErrInvalidRecord is returned for records missing an id or categories.
	ErrInvalidRecord = errors.New("invalid game record")
)

// Catalog is the fixed, ordered collection of games. It never changes after New.
type Catalog struct {
	games []games.Game
	index map[string]int
}

// New validates records and builds a Catalog preserving their order.
func New(records []games.Game) (*Catalog, error) {
	c := &Catalog{
		games: make([]games.Game, 0, len(records)),
		index: make(map[string]int, len(records)),
	}
	for i, g := range records {
		if strings.TrimSpace(g.ID) == "" {
			return nil, fmt.Errorf("%w: record %d has no id", ErrInvalidRecord, i)
		}
		if len(g.Categories) == 0 {
			return nil, fmt.Errorf("%w: game %q has no categories", ErrInvalidRecord, g.ID)
		}
		if _, exists := c.index[g.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, g.ID)
		}
		c.index[g.ID] = len(c.games)
		c.games = append(c.games, cloneGame(g))
	}
	return c, nil
}

// MustNew is New for fixed data known to be valid.
func MustNew(records []games.Game) *Catalog {
	c, err := New(records)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns a copy of every game in catalogue order.
func (c *Catalog) All() []games.Game {
	if c == nil {
		return []games.Game{}
	}
	out := make([]games.Game, len(c.games))
	for i, g := range c.games {
		out[i] = cloneGame(g)
	}
	return out
}

// FindByID returns the game with the given id. Unknown ids report false.
func (c *Catalog) FindByID(id string) (games.Game, bool) {
	if c == nil {
		return games.Game{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return games.Game{}, false
	}
	return cloneGame(c.games[i]), true
}

// Len returns the number of games.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.games)
}

// Categories lists distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, g := range c.All() {
		for _, cat := range g.Categories {
			key := strings.ToLower(cat)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, cat)
		}
	}
	return out
}

func cloneGame(g games.Game) games.Game {
	g.Categories = append([]string(nil), g.Categories...)
	return g
}
