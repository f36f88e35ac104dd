package testutil

import (
	"context"
	"net/http"

	"arcade-roulette-service/internal/metrics"
)

// TelemetryStub replaces metrics.Setup in server tests and counts shutdowns.
type TelemetryStub struct {
	Handler   http.Handler
	Err       error
	Configs   []metrics.TelemetryConfig
	Shutdowns int
}

// Setup matches the metrics.Setup signature.
func (s *TelemetryStub) Setup(_ context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	s.Configs = append(s.Configs, cfg)
	if s.Err != nil {
		return nil, nil, nil, s.Err
	}
	return metrics.NewRecorder(), s.Handler, func(context.Context) error {
		s.Shutdowns++
		return nil
	}, nil
}
