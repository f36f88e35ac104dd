package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	domaingames "arcade-roulette-service/internal/domain/games"
	"arcade-roulette-service/internal/logging"
	"arcade-roulette-service/internal/wishlist"
)

type wishlistStatus struct {
	ID    string `json:"id"`
	Saved bool   `json:"saved"`
}

// Wishlist lists saved ids and the catalogue games they resolve to, in saved order.
func (h *Handler) Wishlist(w http.ResponseWriter, r *http.Request) {
	ids := h.wishlist.List(r.Context())
	saved := make([]domaingames.Game, 0, len(ids))
	for _, id := range ids {
		if g, ok := h.catalog.FindByID(id); ok {
			saved = append(saved, g)
		}
	}
	writeJSON(w, http.StatusOK, domaingames.WishlistResponse{IDs: ids, Games: saved}, h.logger)
}

func (h *Handler) WishlistStatus(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id", "/wishlist/")
	writeJSON(w, http.StatusOK, wishlistStatus{ID: id, Saved: h.wishlist.IsSaved(r.Context(), id)}, h.logger)
}

// SaveGame adds a catalogue game to the wishlist.
func (h *Handler) SaveGame(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id", "/wishlist/")
	if _, ok := h.catalog.FindByID(id); !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}
	if err := h.wishlist.Save(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err, id)
		return
	}
	writeJSON(w, http.StatusOK, wishlistStatus{ID: id, Saved: true}, h.logger)
}

// UnsaveGame removes id from the wishlist; removing an unsaved id succeeds.
func (h *Handler) UnsaveGame(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id", "/wishlist/")
	if err := h.wishlist.Remove(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err, id)
		return
	}
	writeJSON(w, http.StatusOK, wishlistStatus{ID: id, Saved: false}, h.logger)
}

func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, err error, id string) {
	logging.Warn(loggerFromContext(r, h.logger), "wishlist write failed",
		slog.String(logging.FieldGameID, id),
		slog.Any("error", err),
	)
	if errors.Is(err, wishlist.ErrPersistenceUnavailable) {
		writeError(w, r, http.StatusServiceUnavailable, "persistence unavailable", h.logger)
		return
	}
	writeError(w, r, http.StatusInternalServerError, "wishlist update failed", h.logger)
}
