package handlers

import (
	"net/http"
	"strings"
	"testing"

	"arcade-roulette-service/internal/catalog"
	"arcade-roulette-service/internal/community"
	"arcade-roulette-service/internal/recommend"
	"arcade-roulette-service/internal/submissions"
	"arcade-roulette-service/internal/testutil"
)

type errorEnvelope struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func TestSubmitAccepted(t *testing.T) {
	h := newTestHandler(catalog.Default(), nil)
	body := `{"title":"Neon Drift","creator":"PixelWiz","genre":"Arcade","url":"https://example.com","description":"A synthwave racer demo."}`

	rr := testutil.Serve(http.HandlerFunc(h.Submit), http.MethodPost, "/submissions", strings.NewReader(body))
	testutil.AssertStatus(t, rr, http.StatusAccepted)
	var receipt submissions.Receipt
	testutil.DecodeJSON(t, rr, &receipt)
	if receipt.ID == "" || receipt.Title != "Neon Drift" || receipt.Platform != "web" {
		t.Fatalf("unexpected receipt %+v", receipt)
	}
	if h.catalog.Len() != 6 {
		t.Fatalf("expected catalogue untouched by submissions")
	}
}

func TestSubmitShortTitle(t *testing.T) {
	h := newTestHandler(catalog.Default(), nil)
	body := `{"title":"N","creator":"PixelWiz","genre":"Arcade","url":"https://example.com","description":"A synthwave racer demo."}`

	rr := testutil.Serve(http.HandlerFunc(h.Submit), http.MethodPost, "/submissions", strings.NewReader(body))
	testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
	var env errorEnvelope
	testutil.DecodeJSON(t, rr, &env)
	if env.Fields["title"] != "Title must be at least 2 characters." {
		t.Fatalf("unexpected fields %v", env.Fields)
	}
}

func TestSubmitMalformed(t *testing.T) {
	h := newTestHandler(catalog.Default(), nil)
	rr := testutil.Serve(http.HandlerFunc(h.Submit), http.MethodPost, "/submissions", strings.NewReader("{oops"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestRecommendOptions(t *testing.T) {
	h := newTestHandler(catalog.Default(), nil)
	rr := testutil.Serve(http.HandlerFunc(h.RecommendOptions), http.MethodGet, "/recommend/options", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var opts recommend.OptionSet
	testutil.DecodeJSON(t, rr, &opts)
	if len(opts.Genres) != 6 || opts.PlaytimeDefault != 15 {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestRecommendPuzzle(t *testing.T) {
	h := newTestHandler(catalog.Default(), nil)
	rr := testutil.Serve(http.HandlerFunc(h.Recommend), http.MethodPost, "/recommend", strings.NewReader(`{"genres":["Puzzle"],"playtimeMinutes":30}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp recommendation
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Game.ID != "5" || resp.Redirect != "/play/5" {
		t.Fatalf("unexpected recommendation %+v", resp)
	}
}

func TestRecommendEmptyBodyPicksAny(t *testing.T) {
	h := newTestHandler(catalog.Default(), nil)
	rr := testutil.Serve(http.HandlerFunc(h.Recommend), http.MethodPost, "/recommend", strings.NewReader(""))
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRecommendInvalidPreferences(t *testing.T) {
	h := newTestHandler(catalog.Default(), nil)
	rr := testutil.Serve(http.HandlerFunc(h.Recommend), http.MethodPost, "/recommend", strings.NewReader(`{"genres":["Racing"],"playtimeMinutes":7}`))
	testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
	var env errorEnvelope
	testutil.DecodeJSON(t, rr, &env)
	if env.Fields["genres"] == "" || env.Fields["playtimeMinutes"] == "" {
		t.Fatalf("unexpected fields %v", env.Fields)
	}
}

func TestCommunityAndFollow(t *testing.T) {
	h := newTestHandler(catalog.Default(), nil)

	rr := testutil.Serve(http.HandlerFunc(h.Community), http.MethodGet, "/community", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var feed community.Feed
	testutil.DecodeJSON(t, rr, &feed)
	if len(feed.Creators) != 3 {
		t.Fatalf("unexpected feed %+v", feed)
	}

	rr = testutil.Serve(http.HandlerFunc(h.Follow), http.MethodPost, "/community/follow/PixelWiz", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var ack community.FollowAck
	testutil.DecodeJSON(t, rr, &ack)
	if ack.Title != "Followed PixelWiz" {
		t.Fatalf("unexpected ack %+v", ack)
	}

	rr = testutil.Serve(http.HandlerFunc(h.Follow), http.MethodPost, "/community/follow/Nobody", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
