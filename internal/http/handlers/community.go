package handlers

import (
	"errors"
	"net/http"

	"arcade-roulette-service/internal/community"
)

func (h *Handler) Community(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.feed, h.logger)
}

// Follow acknowledges following a creator from the feed.
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	ack, err := h.feed.Follow(pathParam(r, "name", "/community/follow/"))
	if errors.Is(err, community.ErrUnknownCreator) {
		writeError(w, r, http.StatusNotFound, "creator not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ack, h.logger)
}
