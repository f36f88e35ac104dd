package recommend

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"arcade-roulette-service/internal/domain/games"
)

const (
	DefaultPlaytime = 15
	MaxPlaytime     = 60
	PlaytimeStep    = 5
)

var (
	Styles = []string{"Single Player", "Multiplayer", "Local Co-op", "MMO"}
	Moods  = []string{"Chill", "High Energy", "Competitive", "Brainy"}
)

// Preferences are the quiz answers. Only Genres influences the pick.
type Preferences struct {
	Genres          []string `json:"genres"`
	Style           string   `json:"style,omitempty"`
	PlaytimeMinutes *int     `json:"playtimeMinutes,omitempty"`
	Mood            string   `json:"mood,omitempty"`
}

// Playtime returns the chosen playtime or the default.
func (p Preferences) Playtime() int {
	if p.PlaytimeMinutes == nil {
		return DefaultPlaytime
	}
	return *p.PlaytimeMinutes
}

// FieldError lists invalid quiz answers keyed by JSON field name.
type FieldError struct {
	Fields map[string]string
}

func (e *FieldError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid preferences: %s", strings.Join(names, ", "))
}

// Validate returns a *FieldError when any answer is outside its option list.
func (p Preferences) Validate() error {
	fields := make(map[string]string)
	for _, g := range p.Genres {
		if !games.IsGenre(g) {
			fields["genres"] = fmt.Sprintf("Unknown genre %q.", g)
			break
		}
	}
	if p.Style != "" && !slices.Contains(Styles, p.Style) {
		fields["style"] = fmt.Sprintf("Unknown play style %q.", p.Style)
	}
	if p.Mood != "" && !slices.Contains(Moods, p.Mood) {
		fields["mood"] = fmt.Sprintf("Unknown mood %q.", p.Mood)
	}
	if t := p.Playtime(); t < 0 || t > MaxPlaytime || t%PlaytimeStep != 0 {
		fields["playtimeMinutes"] = fmt.Sprintf("Playtime must be between 0 and %d minutes in steps of %d.", MaxPlaytime, PlaytimeStep)
	}
	if len(fields) > 0 {
		return &FieldError{Fields: fields}
	}
	return nil
}

// OptionSet describes the quiz choices offered to clients.
type OptionSet struct {
	Genres          []string `json:"genres"`
	Styles          []string `json:"styles"`
	Moods           []string `json:"moods"`
	PlaytimeMax     int      `json:"playtimeMax"`
	PlaytimeStep    int      `json:"playtimeStep"`
	PlaytimeDefault int      `json:"playtimeDefault"`
}

func Options() OptionSet {
	return OptionSet{
		Genres:          slices.Clone(games.Genres),
		Styles:          slices.Clone(Styles),
		Moods:           slices.Clone(Moods),
		PlaytimeMax:     MaxPlaytime,
		PlaytimeStep:    PlaytimeStep,
		PlaytimeDefault: DefaultPlaytime,
	}
}
