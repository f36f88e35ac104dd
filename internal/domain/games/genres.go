package games

// Genres lists the genre vocabulary shared by the quiz and the submission form.
var Genres = []string{"Arcade", "Action", "Puzzle", "RPG", "Strategy", "Rhythm"}

// IsGenre reports whether name is an exact entry in Genres.
func IsGenre(name string) bool {
	for _, g := range Genres {
		if g == name {
			return true
		}
	}
	return false
}
