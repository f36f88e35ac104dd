package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersAreNilSafe(t *testing.T) {
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", errors.New("boom"))
}

func TestErrorAppendsErrField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Error(logger, "failed", errors.New("boom"), slog.String("k", "v"))
	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "k=v") {
		t.Fatalf("unexpected log line %q", out)
	}
}
