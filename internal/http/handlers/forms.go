package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	domaingames "arcade-roulette-service/internal/domain/games"
	"arcade-roulette-service/internal/recommend"
	"arcade-roulette-service/internal/submissions"
)

const maxBodyBytes = 64 << 10

// Submit validates a demo submission and acknowledges it with a receipt.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	receipt, err := h.intake.Submit(r.Context(), payload)
	var verr *submissions.ValidationError
	switch {
	case err == nil:
		writeJSON(w, http.StatusAccepted, receipt, h.logger)
	case errors.Is(err, submissions.ErrMalformed):
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
	case errors.As(err, &verr):
		writeValidationError(w, r, "invalid submission", verr.Fields, h.logger)
	default:
		writeError(w, r, http.StatusInternalServerError, "submission failed", h.logger)
	}
}

func (h *Handler) RecommendOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, recommend.Options(), h.logger)
}

type recommendation struct {
	Game     domaingames.Game `json:"game"`
	Redirect string           `json:"redirect"`
}

// Recommend picks a game for the posted quiz answers.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var prefs recommend.Preferences
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&prefs); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	game, err := h.recommender.Recommend(prefs)
	var ferr *recommend.FieldError
	switch {
	case errors.As(err, &ferr):
		writeValidationError(w, r, "invalid preferences", ferr.Fields, h.logger)
		return
	case err != nil:
		writeError(w, r, http.StatusNotFound, "no eligible games", h.logger)
		return
	}
	h.metrics.RecordPick()
	writeJSON(w, http.StatusOK, recommendation{Game: game, Redirect: playPath(game.ID)}, h.logger)
}
