package server

import (
	"errors"
	"net/http"
	"testing"

	"arcade-roulette-service/internal/config"
	"arcade-roulette-service/internal/metrics"
	"arcade-roulette-service/internal/testutil"
)

func stubTelemetry(t *testing.T, stub *testutil.TelemetryStub) {
	t.Helper()
	orig := metricsSetup
	metricsSetup = stub.Setup
	t.Cleanup(func() { metricsSetup = orig })
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	stubTelemetry(t, &testutil.TelemetryStub{Handler: http.NewServeMux()})

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{
			Enabled: true,
			Port:    "9999",
		},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("expected metrics addr :9999, got %s", srv.Addr())
	}
}

func TestBuildMetricsPassesTelemetryConfig(t *testing.T) {
	stub := &testutil.TelemetryStub{}
	stubTelemetry(t, stub)

	buildMetrics(config.Config{Metrics: config.MetricsConfig{
		Enabled:      true,
		Port:         "9191",
		ServiceName:  "roulette-test",
		OtlpEndpoint: "collector:4318",
	}}, nil, nil)

	if len(stub.Configs) != 1 {
		t.Fatalf("expected one setup call, got %d", len(stub.Configs))
	}
	got := stub.Configs[0]
	if got.Port != "9191" || got.ServiceName != "roulette-test" || got.OtlpEndpoint != "collector:4318" {
		t.Fatalf("unexpected telemetry config %+v", got)
	}
}

func TestBuildMetricsFailureFallsBackToRecorder(t *testing.T) {
	stubTelemetry(t, &testutil.TelemetryStub{Err: errors.New("exporter down")})

	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil, nil)
	if rec == nil {
		t.Fatalf("expected fallback recorder")
	}
	if srv != nil || stop != nil {
		t.Fatalf("expected no metrics server on failure")
	}
}

func TestBuildMetricsKeepsInjectedRecorder(t *testing.T) {
	injected := metrics.NewRecorder()
	rec, srv, _ := buildMetrics(config.Config{}, nil, injected)
	if rec != injected || srv != nil {
		t.Fatalf("expected injected recorder to be returned untouched")
	}
}

func TestGracefulShutdownStopsTelemetryExporter(t *testing.T) {
	stub := &testutil.TelemetryStub{Handler: http.NewServeMux()}
	stubTelemetry(t, stub)

	cfg := memoryConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "0"}
	srv := New(cfg, nil)
	if srv.metricsServer == nil {
		t.Fatalf("expected metrics server when telemetry is enabled")
	}

	srv.gracefulShutdown()

	if stub.Shutdowns != 1 {
		t.Fatalf("expected exporter shutdown once, got %d", stub.Shutdowns)
	}
}
