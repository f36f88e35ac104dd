package selector

import (
	"errors"
	"math/rand/v2"
	"sync"

	"arcade-roulette-service/internal/domain/games"
)

// ErrNoEligibleGames is returned when no game remains after exclusion.
var ErrNoEligibleGames = errors.New("no eligible games")

// Source supplies the games to choose from.
type Source interface {
	All() []games.Game
}

// Selector picks games uniformly at random from a Source.
type Selector struct {
	source Source

	mu  sync.Mutex
	rng *rand.Rand
}

// New constructs a Selector. A nil rng uses a randomly seeded generator.
func New(source Source, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{source: source, rng: rng}
}

// PickRandom returns one game, never the one with excludeID when it is set.
func (s *Selector) PickRandom(excludeID string) (games.Game, error) {
	eligible := Eligible(s.source.All(), excludeID)
	if len(eligible) == 0 {
		return games.Game{}, ErrNoEligibleGames
	}
	return eligible[s.intN(len(eligible))], nil
}

// PickFrom returns one game from list, honouring the same exclusion rule.
func (s *Selector) PickFrom(list []games.Game, excludeID string) (games.Game, error) {
	eligible := Eligible(list, excludeID)
	if len(eligible) == 0 {
		return games.Game{}, ErrNoEligibleGames
	}
	return eligible[s.intN(len(eligible))], nil
}

// Eligible drops the game with excludeID from list; an empty id keeps everything.
func Eligible(list []games.Game, excludeID string) []games.Game {
	if excludeID == "" {
		return list
	}
	out := make([]games.Game, 0, len(list))
	for _, g := range list {
		if g.ID != excludeID {
			out = append(out, g)
		}
	}
	return out
}

func (s *Selector) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
