package games

// PlaceholderURL marks a game whose demo has no real playable content yet.
const PlaceholderURL = "about:blank"

// Game is the canonical catalogue record exposed by the service.
type Game struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Creator     string   `json:"creator" yaml:"creator"`
	URL         string   `json:"url" yaml:"url"`
	Thumbnail   string   `json:"thumbnail" yaml:"thumbnail"`
	Categories  []string `json:"categories" yaml:"categories"`
	Description string   `json:"description" yaml:"description"`
}

// Playable reports whether the game points at real content.
func (g Game) Playable() bool {
	return g.URL != "" && g.URL != PlaceholderURL
}

// PrimaryCategory returns the first category, used as the display badge.
func (g Game) PrimaryCategory() string {
	if len(g.Categories) == 0 {
		return ""
	}
	return g.Categories[0]
}

// CatalogResponse is the payload returned by /games.
type CatalogResponse struct {
	Count int    `json:"count"`
	Games []Game `json:"games"`
}

// NewCatalogResponse builds a CatalogResponse payload.
func NewCatalogResponse(games []Game) CatalogResponse {
	if games == nil {
		games = []Game{}
	}
	return CatalogResponse{Count: len(games), Games: games}
}

// PlayResponse is the payload returned by /play/{id}.
type PlayResponse struct {
	Game     Game   `json:"game"`
	Saved    bool   `json:"saved"`
	Playable bool   `json:"playable"`
	Next     string `json:"next"`
}

// WishlistResponse is the payload returned by /wishlist.
type WishlistResponse struct {
	IDs   []string `json:"ids"`
	Games []Game   `json:"games"`
}
