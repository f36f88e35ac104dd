package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(s values) MetricsConfig {
	return MetricsConfig{
		Enabled:      s.boolOrDefault("metrics.enabled", true),
		Port:         s.stringOrDefault("metrics.port", defaultMetricsPort),
		OtlpEndpoint: s.stringOrDefault("metrics.otlp_endpoint", ""),
		ServiceName:  s.stringOrDefault("metrics.service_name", defaultServiceName),
		OtlpInsecure: s.boolOrDefault("metrics.otlp_insecure", true),
	}
}
