package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"arcade-roulette-service/internal/catalog"
	"arcade-roulette-service/internal/community"
	domaingames "arcade-roulette-service/internal/domain/games"
	"arcade-roulette-service/internal/metrics"
	"arcade-roulette-service/internal/recommend"
	"arcade-roulette-service/internal/selector"
	"arcade-roulette-service/internal/submissions"
	"arcade-roulette-service/internal/wishlist"
)

// Deps are the components served over HTTP. Logger and Metrics may be nil.
type Deps struct {
	Catalog     *catalog.Catalog
	Selector    *selector.Selector
	Wishlist    wishlist.Store
	Intake      *submissions.Intake
	Recommender *recommend.Recommender
	Feed        community.Feed
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

// Handler wires HTTP routes to the catalogue, selector, and wishlist.
type Handler struct {
	catalog     *catalog.Catalog
	selector    *selector.Selector
	wishlist    wishlist.Store
	intake      *submissions.Intake
	recommender *recommend.Recommender
	feed        community.Feed
	logger      *slog.Logger
	metrics     *metrics.Recorder
}

// NewHandler constructs a Handler, filling in defaults for optional components.
func NewHandler(d Deps) *Handler {
	if d.Catalog == nil {
		d.Catalog = catalog.Default()
	}
	if d.Selector == nil {
		d.Selector = selector.New(d.Catalog, nil)
	}
	if d.Wishlist == nil {
		d.Wishlist = wishlist.NewListStore(wishlist.NewMemoryBackend(), d.Logger, d.Metrics)
	}
	if d.Intake == nil {
		d.Intake = submissions.NewIntake(d.Logger, d.Metrics)
	}
	if d.Recommender == nil {
		d.Recommender = recommend.New(d.Catalog, d.Selector)
	}
	if d.Feed.Creators == nil {
		d.Feed = community.DefaultFeed()
	}
	return &Handler{
		catalog:     d.Catalog,
		selector:    d.Selector,
		wishlist:    d.Wishlist,
		intake:      d.Intake,
		recommender: d.Recommender,
		feed:        d.Feed,
		logger:      d.Logger,
		metrics:     d.Metrics,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic; an empty catalogue has nothing to serve.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.catalog.Len() == 0 {
		writeError(w, r, http.StatusServiceUnavailable, "catalog empty", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Games lists the catalogue, optionally filtered by ?category= and ?q=.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.Filter{Category: q.Get("category"), Search: q.Get("q")}
	writeJSON(w, http.StatusOK, domaingames.NewCatalogResponse(filter.Apply(h.catalog.All())), h.logger)
}

// GameByID returns a specific game if present.
func (h *Handler) GameByID(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id", "/games/")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "missing game id", h.logger)
		return
	}
	game, ok := h.catalog.FindByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, game, h.logger)
}

// RandomGame returns one random game, never the one named by ?exclude=.
func (h *Handler) RandomGame(w http.ResponseWriter, r *http.Request) {
	game, ok := h.pick(w, r, r.URL.Query().Get("exclude"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, game, h.logger)
}

// NotFound answers unknown routes with the JSON error envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// pick selects a random game and writes the error response itself when it cannot.
func (h *Handler) pick(w http.ResponseWriter, r *http.Request, excludeID string) (domaingames.Game, bool) {
	game, err := h.selector.PickRandom(excludeID)
	if errors.Is(err, selector.ErrNoEligibleGames) {
		writeError(w, r, http.StatusNotFound, "no eligible games", h.logger)
		return domaingames.Game{}, false
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "selection failed", h.logger)
		return domaingames.Game{}, false
	}
	h.metrics.RecordPick()
	return game, true
}
