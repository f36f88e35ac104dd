package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"arcade-roulette-service/internal/config"
	domaingames "arcade-roulette-service/internal/domain/games"
	"arcade-roulette-service/internal/testutil"
	"arcade-roulette-service/internal/wishlist"
)

func memoryConfig() config.Config {
	return config.Config{
		Port:     "0",
		Wishlist: config.WishlistConfig{Backend: config.BackendMemory},
		Metrics:  config.MetricsConfig{Enabled: false},
	}
}

func stubComponents(backend wishlist.Backend) *Components {
	return &Components{Wishlist: wishlist.NewListStore(backend, nil, nil)}
}

func TestNewConstructsServer(t *testing.T) {
	srv := New(memoryConfig(), nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.Components().Catalog.Len() != 6 {
		t.Fatalf("expected built-in catalogue, got %d games", srv.Components().Catalog.Len())
	}
}

func TestServerServesHealthAndGames(t *testing.T) {
	srv := New(memoryConfig(), nil)
	router := srv.Handler()

	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	gamesRec := httptest.NewRecorder()
	router.ServeHTTP(gamesRec, httptest.NewRequest(http.MethodGet, "/games", nil))
	if gamesRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /games, got %d", gamesRec.Code)
	}
	var resp domaingames.CatalogResponse
	if err := json.NewDecoder(gamesRec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode games response: %v", err)
	}
	if len(resp.Games) != 6 {
		t.Fatalf("expected 6 games, got %d", len(resp.Games))
	}
}

func TestServerWishlistRoundTrip(t *testing.T) {
	srv := New(memoryConfig(), nil)
	router := srv.Handler()

	saveRec := httptest.NewRecorder()
	router.ServeHTTP(saveRec, httptest.NewRequest(http.MethodPut, "/wishlist/3", nil))
	if saveRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from save, got %d", saveRec.Code)
	}

	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, httptest.NewRequest(http.MethodGet, "/wishlist", nil))
	var resp domaingames.WishlistResponse
	if err := json.NewDecoder(listRec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode wishlist: %v", err)
	}
	if len(resp.IDs) != 1 || resp.IDs[0] != "3" {
		t.Fatalf("expected wishlist [3], got %v", resp.IDs)
	}
}

func TestNewFallsBackWhenCatalogFileMissing(t *testing.T) {
	cfg := memoryConfig()
	cfg.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")
	logger, buf := testutil.NewBufferLogger()

	srv := New(cfg, logger)
	if srv.Components().Catalog.Len() != 6 {
		t.Fatalf("expected fallback catalogue")
	}
	if buf.Len() == 0 {
		t.Fatalf("expected an error log for the unreadable catalogue")
	}
}

func TestNewLoadsCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.yaml")
	doc := "- id: x1\n  title: Solo\n  creator: Someone\n  categories: [Arcade]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write catalogue: %v", err)
	}
	cfg := memoryConfig()
	cfg.CatalogFile = path

	srv := New(cfg, nil)
	if srv.Components().Catalog.Len() != 1 {
		t.Fatalf("expected 1 game from file, got %d", srv.Components().Catalog.Len())
	}
}

func TestGracefulShutdownCallsShutdownAndClosesBackend(t *testing.T) {
	backend := &testutil.FailingBackend{ReadOK: true}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, stubComponents(backend), httpSrv)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	if !backend.Closed {
		t.Fatalf("expected wishlist backend to be closed")
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	backend := &testutil.FailingBackend{}
	srv := newServerWithDeps(config.Config{}, nil, stubComponents(backend), blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if !backend.Closed {
		t.Fatalf("expected backend close even after shutdown timeout")
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownStopsMetrics(t *testing.T) {
	metricsSrv := &testutil.StubHTTPServer{}
	stopped := false
	srv := newServerWithDeps(config.Config{}, nil, stubComponents(wishlist.NewMemoryBackend()), &testutil.StubHTTPServer{})
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopped = true
		return nil
	}

	srv.gracefulShutdown()

	if !stopped {
		t.Fatalf("expected metrics stop to be called")
	}
	if metricsSrv.ShutdownCalls != 1 {
		t.Fatalf("expected metrics server shutdown once, got %d", metricsSrv.ShutdownCalls)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	httpSrv := &testutil.ErrHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, stubComponents(wishlist.NewMemoryBackend()), httpSrv)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &testutil.CloseableHTTPServer{}
	backend := &testutil.FailingBackend{}
	srv := newServerWithDeps(config.Config{}, nil, stubComponents(backend), httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown once, got %d", httpSrv.ShutdownCalls)
	}
	if !backend.Closed {
		t.Fatalf("expected backend closed after Run")
	}
}
