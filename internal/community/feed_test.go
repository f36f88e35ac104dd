package community

import (
	"errors"
	"testing"
)

func TestDefaultFeedContent(t *testing.T) {
	f := DefaultFeed()
	if len(f.Creators) != 3 || f.Creators[0].Name != "PixelWiz" {
		t.Fatalf("unexpected creators %+v", f.Creators)
	}
	total := 0
	for _, o := range f.Poll.Options {
		total += o.VoteShare
	}
	if total != 100 {
		t.Fatalf("expected poll shares to sum to 100, got %d", total)
	}
	if f.Poll.Options[0].VoteString != "45%" {
		t.Fatalf("expected formatted vote share, got %q", f.Poll.Options[0].VoteString)
	}
	if len(f.Activity) != 3 || f.Media.Author != "CyberNode" {
		t.Fatalf("unexpected feed %+v", f)
	}
}

func TestDefaultFeedReturnsFreshCopies(t *testing.T) {
	a := DefaultFeed()
	a.Creators[0].Name = "changed"
	if DefaultFeed().Creators[0].Name != "PixelWiz" {
		t.Fatalf("expected independent feed copies")
	}
}

func TestFollow(t *testing.T) {
	f := DefaultFeed()
	ack, err := f.Follow("cybernode")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if ack.Title != "Followed CyberNode" {
		t.Fatalf("unexpected ack %+v", ack)
	}
	if _, err := f.Follow("Nobody"); !errors.Is(err, ErrUnknownCreator) {
		t.Fatalf("expected ErrUnknownCreator, got %v", err)
	}
}
