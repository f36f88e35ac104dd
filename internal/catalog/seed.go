package catalog

import "arcade-roulette-service/internal/domain/games"

// Default returns the built-in demo catalogue.
func Default() *Catalog {
	return MustNew(seedGames())
}

func seedGames() []games.Game {
	return []games.Game{
		{
			ID:          "1",
			Title:       "Neon Racer 2049",
			Creator:     "CyberSoft",
			URL:         "https://v6p9d9t4.rocketcdn.me/wp-content/uploads/2019/06/breakout-game-html5.jpg",
			Thumbnail:   "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=800&q=80",
			Categories:  []string{"Racing", "Arcade"},
			Description: "High speed racing in a futuristic cyberpunk city.",
		},
		{
			ID:          "2",
			Title:       "Space Defender",
			Creator:     "PixelLabs",
			URL:         games.PlaceholderURL,
			Thumbnail:   "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=800&q=80",
			Categories:  []string{"Shooter", "Space"},
			Description: "Defend your station from incoming asteroids and alien ships.",
		},
		{
			ID:          "3",
			Title:       "Geometry Dash Clone",
			Creator:     "IndieDev99",
			URL:         games.PlaceholderURL,
			Thumbnail:   "https://images.unsplash.com/photo-1614680376593-902f74cf0d41?w=800&q=80",
			Categories:  []string{"Platformer", "Rhythm"},
			Description: "Jump and fly your way through danger in this rhythm-based action platformer.",
		},
		{
			ID:          "4",
			Title:       "Pixel Quest",
			Creator:     "RetroMasters",
			URL:         games.PlaceholderURL,
			Thumbnail:   "https://images.unsplash.com/photo-1642479753763-02d291980833?w=800&q=80",
			Categories:  []string{"RPG", "Adventure"},
			Description: "A classic 8-bit adventure in a dangerous dungeon.",
		},
		{
			ID:          "5",
			Title:       "Bubble Pop Legends",
			Creator:     "CasualKing",
			URL:         games.PlaceholderURL,
			Thumbnail:   "https://images.unsplash.com/photo-1509198397868-475647b2a1e5?w=800&q=80",
			Categories:  []string{"Puzzle", "Casual"},
			Description: "Match 3 or more bubbles to pop them.",
		},
		{
			ID:          "6",
			Title:       "Cyber Chess",
			Creator:     "BrainGames",
			URL:         games.PlaceholderURL,
			Thumbnail:   "https://images.unsplash.com/photo-1529699213352-73f9b726b9b6?w=800&q=80",
			Categories:  []string{"Strategy", "Board"},
			Description: "Classic chess with a futuristic twist.",
		},
	}
}
