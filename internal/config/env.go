package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// values reads keys from viper with the fallback rules shared by every setting:
// blank, unparsable, or non-positive numbers use the default.
type values struct {
	v *viper.Viper
}

func (s values) raw(key string) string {
	return strings.TrimSpace(s.v.GetString(key))
}

func (s values) stringOrDefault(key, defaultValue string) string {
	if val := s.raw(key); val != "" {
		return val
	}
	return defaultValue
}

func (s values) durationOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := s.raw(key)
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func (s values) intOrDefault(key string, defaultValue int) int {
	raw := s.raw(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func (s values) boolOrDefault(key string, defaultValue bool) bool {
	raw := s.raw(key)
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}
