package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"arcade-roulette-service/internal/metrics"
	"arcade-roulette-service/internal/wishlist"
)

func TestClockAdvances(t *testing.T) {
	c := NewClock("2026-03-01T10:00:00Z")
	start := c.Now()
	if got := c.Advance(90 * time.Second); got.Sub(start) != 90*time.Second || !c.Now().Equal(got) {
		t.Fatalf("expected clock to advance 90s, got %v -> %v", start, got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	NewClock("not-a-time")
}

func TestFixturesHelper(t *testing.T) {
	g := SampleGame("id-1")
	if g.ID != "id-1" || len(g.Categories) == 0 || !g.Playable() {
		t.Fatalf("unexpected game fixture %+v", g)
	}
	c := SampleCatalog("a", "b")
	if c.Len() != 2 {
		t.Fatalf("expected two games, got %d", c.Len())
	}
	if FixedRand(3).Uint64() != FixedRand(3).Uint64() {
		t.Fatalf("expected deterministic generator")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestFailingBackend(t *testing.T) {
	b := &FailingBackend{}
	s := wishlist.NewListStore(b, nil, nil)
	ctx := context.Background()
	if err := s.Save(ctx, "1"); !errors.Is(err, wishlist.ErrPersistenceUnavailable) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if got := s.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
	_ = b.Close()
	if !b.Closed {
		t.Fatalf("expected close recorded")
	}
	if NewMemoryWishlist().List(ctx) == nil {
		t.Fatalf("expected non-nil list")
	}
}

func TestHTTPServerStubs(t *testing.T) {
	stub := &StubHTTPServer{AddrVal: ":1", ListenErr: errors.New("x")}
	if stub.ListenAndServe() == nil || stub.ListenCalls != 1 {
		t.Fatalf("expected listen error and call counted")
	}
	_ = stub.Shutdown(context.Background())
	if stub.ShutdownCalls != 1 || stub.Addr() != ":1" {
		t.Fatalf("unexpected stub state %+v", stub)
	}
	if (&CloseableHTTPServer{}).ListenAndServe() != http.ErrServerClosed {
		t.Fatalf("expected ErrServerClosed")
	}
	if (&ErrHTTPServer{}).ListenAndServe() == nil {
		t.Fatalf("expected listen failure")
	}
}

func TestTelemetryStub(t *testing.T) {
	stub := &TelemetryStub{Handler: http.NewServeMux()}
	rec, handler, shutdown, err := stub.Setup(context.Background(), metrics.TelemetryConfig{Port: "9100"})
	if err != nil || rec == nil || handler == nil {
		t.Fatalf("expected recorder and handler, got %v %v %v", rec, handler, err)
	}
	_ = shutdown(context.Background())
	if stub.Shutdowns != 1 || len(stub.Configs) != 1 || stub.Configs[0].Port != "9100" {
		t.Fatalf("unexpected stub state %+v", stub)
	}

	failing := &TelemetryStub{Err: errors.New("exporter down")}
	if _, _, _, err := failing.Setup(context.Background(), metrics.TelemetryConfig{}); err == nil {
		t.Fatalf("expected setup error")
	}
}
