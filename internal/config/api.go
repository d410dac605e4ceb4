package config

import (
	"strings"
	"time"
)

// APIConfig points the gateway client at the external REST backend.
// BaseURL defaults to empty, meaning paths are requested relative to
// whatever origin the HTTP client resolves them against.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

func LoadAPIConfig() APIConfig {
	return APIConfig{
		BaseURL: strings.TrimRight(envStr("API_BASE_URL", ""), "/"),
		Timeout: envDur("API_TIMEOUT", 15*time.Second),
	}
}
