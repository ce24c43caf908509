package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is a per-endpoint rate limit rule. A trailing "/" in Path
// makes it a prefix rule.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window
	Window time.Duration // refill window
	Burst  int           // bucket capacity, defaults to Limit when 0
}

// LoadConfig builds rate limit settings from RATE_LIMIT_* environment
// variables.
func LoadConfig() *Config {
	if !envBoolOr("RATE_LIMIT_ENABLED", true) {
		return &Config{}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envIntOr("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDurationOr("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDurationOr("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific rules.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: evaluation endpoints run the scoring engine per request
		{Path: "/attempts", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/attempts/stream", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/evaluate", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 2: credential endpoints (strict, slows brute forcing)
		{Path: "/auth/register", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/auth/login", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
		{Path: "/auth/password", Method: "PUT", Limit: 10, Window: time.Minute, Burst: 3},

		// Tier 3: question bank writes
		{Path: "/questions", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/questions/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/questions/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads fall through to the default limit; /health is unlimited via the matcher.
	}
}

// envIntOr reads an integer environment variable, falling back when unset or
// unparsable.
func envIntOr(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// envBoolOr reads a boolean environment variable, falling back when unset or
// unparsable.
func envBoolOr(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}

// envDurationOr reads a duration environment variable, falling back when
// unset or unparsable.
func envDurationOr(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

// parseIPList splits a comma-separated address list into a lookup set.
func parseIPList(raw string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(raw, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
