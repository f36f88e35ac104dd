package server

import (
	"log/slog"

	"arcade-roulette-service/internal/catalog"
	"arcade-roulette-service/internal/community"
	"arcade-roulette-service/internal/config"
	"arcade-roulette-service/internal/http/handlers"
	"arcade-roulette-service/internal/logging"
	"arcade-roulette-service/internal/metrics"
	"arcade-roulette-service/internal/recommend"
	"arcade-roulette-service/internal/selector"
	"arcade-roulette-service/internal/submissions"
	"arcade-roulette-service/internal/wishlist"
)

// Components are the domain services shared by the HTTP server and the CLI.
type Components struct {
	Catalog     *catalog.Catalog
	Selector    *selector.Selector
	Wishlist    *wishlist.ListStore
	Intake      *submissions.Intake
	Recommender *recommend.Recommender
	Feed        community.Feed
}

// BuildComponents loads the catalogue and opens the wishlist backend.
// Both fall back (built-in games, memory backend) instead of failing.
func BuildComponents(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Components {
	cat := loadCatalog(cfg.CatalogFile, logger)
	sel := selector.New(cat, nil)
	backend := newWishlistFactory(logger).open(cfg.Wishlist)
	return &Components{
		Catalog:     cat,
		Selector:    sel,
		Wishlist:    wishlist.NewListStore(backend, logger, recorder),
		Intake:      submissions.NewIntake(logger, recorder),
		Recommender: recommend.New(cat, sel),
		Feed:        community.DefaultFeed(),
	}
}

// Deps adapts the components for the HTTP handlers.
func (c *Components) Deps(logger *slog.Logger, recorder *metrics.Recorder) handlers.Deps {
	return handlers.Deps{
		Catalog:     c.Catalog,
		Selector:    c.Selector,
		Wishlist:    c.Wishlist,
		Intake:      c.Intake,
		Recommender: c.Recommender,
		Feed:        c.Feed,
		Logger:      logger,
		Metrics:     recorder,
	}
}

// Close releases the wishlist backend.
func (c *Components) Close() error {
	if c == nil || c.Wishlist == nil {
		return nil
	}
	return c.Wishlist.Backend().Close()
}

func loadCatalog(path string, logger *slog.Logger) *catalog.Catalog {
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		logging.Error(logger, "catalog file unusable, using built-in games", err, slog.String("file", path))
		return catalog.Default()
	}
	logging.Info(logger, "catalog loaded", slog.String("file", path), slog.Int(logging.FieldCount, cat.Len()))
	return cat
}
