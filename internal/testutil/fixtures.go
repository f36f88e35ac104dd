package testutil

import (
	"math/rand/v2"

	"arcade-roulette-service/internal/catalog"
	domaingames "arcade-roulette-service/internal/domain/games"
)

// SampleGame returns a minimal game fixture with the provided id.
func SampleGame(id string) domaingames.Game {
	return domaingames.Game{
		ID:          id,
		Title:       "Game " + id,
		Creator:     "Test Studio",
		URL:         "https://games.test/" + id,
		Thumbnail:   "https://games.test/" + id + ".png",
		Categories:  []string{"Arcade"},
		Description: "Fixture game " + id,
	}
}

// SampleCatalog builds a catalogue of SampleGame fixtures in the given order.
func SampleCatalog(ids ...string) *catalog.Catalog {
	list := make([]domaingames.Game, 0, len(ids))
	for _, id := range ids {
		list = append(list, SampleGame(id))
	}
	return catalog.MustNew(list)
}

// FixedRand returns a deterministic generator for selector tests.
func FixedRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
