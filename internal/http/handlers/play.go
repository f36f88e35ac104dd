package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	domaingames "arcade-roulette-service/internal/domain/games"
	"arcade-roulette-service/internal/logging"
)

func playPath(id string) string {
	return "/play/" + url.PathEscape(id)
}

// PlayRandom redirects to a randomly chosen game.
func (h *Handler) PlayRandom(w http.ResponseWriter, r *http.Request) {
	game, ok := h.pick(w, r, "")
	if !ok {
		return
	}
	redirect(w, r, playPath(game.ID))
}

// Play returns the player view for a game. Unknown ids redirect to a random valid game.
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id", "/play/")
	game, found := h.catalog.FindByID(id)
	if !found {
		logging.Info(loggerFromContext(r, h.logger), "unknown game, redirecting to random", slog.String(logging.FieldGameID, id))
		h.PlayRandom(w, r)
		return
	}
	writeJSON(w, http.StatusOK, domaingames.PlayResponse{
		Game:     game,
		Saved:    h.wishlist.IsSaved(r.Context(), game.ID),
		Playable: game.Playable(),
		Next:     playPath(game.ID) + "/next",
	}, h.logger)
}

// PlayNext redirects to a random game other than the current one.
func (h *Handler) PlayNext(w http.ResponseWriter, r *http.Request) {
	game, ok := h.pick(w, r, pathParam(r, "id", "/play/"))
	if !ok {
		return
	}
	redirect(w, r, playPath(game.ID))
}
