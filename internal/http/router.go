package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"arcade-roulette-service/internal/http/handlers"
	"arcade-roulette-service/internal/http/middleware"
	"arcade-roulette-service/internal/logging"
	"arcade-roulette-service/internal/metrics"
)

// RouterOptions toggles optional middleware.
type RouterOptions struct {
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	Compression bool
}

// NewRouter registers HTTP routes on a chi router wrapped in logging and recovery middleware.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(chimw.Recoverer)
	if opts.Compression {
		if compress, err := middleware.Compression(); err != nil {
			logging.Warn(opts.Logger, "compression disabled", "error", err)
		} else {
			r.Use(compress)
		}
	}

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/games", func(r chi.Router) {
		r.Get("/", handler.Games)
		r.Get("/random", handler.RandomGame)
		r.Get("/{id}", handler.GameByID)
	})

	r.Route("/play", func(r chi.Router) {
		r.Get("/", handler.PlayRandom)
		r.Get("/{id}", handler.Play)
		r.Get("/{id}/next", handler.PlayNext)
	})

	r.Route("/wishlist", func(r chi.Router) {
		r.Get("/", handler.Wishlist)
		r.Get("/{id}", handler.WishlistStatus)
		r.Put("/{id}", handler.SaveGame)
		r.Delete("/{id}", handler.UnsaveGame)
	})

	r.Post("/submissions", handler.Submit)
	r.Get("/recommend/options", handler.RecommendOptions)
	r.Post("/recommend", handler.Recommend)
	r.Get("/community", handler.Community)
	r.Post("/community/follow/{name}", handler.Follow)

	return r
}
