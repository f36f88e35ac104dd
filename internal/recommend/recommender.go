package recommend

import (
	"arcade-roulette-service/internal/catalog"
	"arcade-roulette-service/internal/domain/games"
	"arcade-roulette-service/internal/selector"
)

// Recommender picks a game matching the chosen genres.
type Recommender struct {
	source selector.Source
	sel    *selector.Selector
}

func New(source selector.Source, sel *selector.Selector) *Recommender {
	return &Recommender{source: source, sel: sel}
}

// Recommend validates prefs and picks among games in any chosen genre.
// With no genre chosen, or no match, the whole catalogue is eligible.
func (r *Recommender) Recommend(prefs Preferences) (games.Game, error) {
	if err := prefs.Validate(); err != nil {
		return games.Game{}, err
	}
	all := r.source.All()
	if matched := matchGenres(all, prefs.Genres); len(matched) > 0 {
		return r.sel.PickFrom(matched, "")
	}
	return r.sel.PickFrom(all, "")
}

func matchGenres(list []games.Game, genres []string) []games.Game {
	if len(genres) == 0 {
		return nil
	}
	var out []games.Game
	for _, g := range list {
		for _, genre := range genres {
			if catalog.HasCategory(g, genre) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
