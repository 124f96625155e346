package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// ScoringEndpointConfigs returns the limits for the analysis endpoints. Scoring and
// improvements run every analyzer and may call the LLM, so they share the stricter limit.
func ScoringEndpointConfigs(scoreLimit int, window time.Duration) []EndpointConfig {
	burst := max(1, scoreLimit/6)
	return []EndpointConfig{
		{Path: "/v1/score", Method: "POST", Limit: scoreLimit, Window: window, Burst: burst},
		{Path: "/v1/improvements", Method: "POST", Limit: scoreLimit, Window: window, Burst: burst},
	}
}

// unlimited paths are never rate limited
var unlimited = map[string]bool{
	"GET /health":  true,
	"GET /metrics": true,
}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
// Path matching supports prefix matching (e.g., "/v1/" matches "/v1/score").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited[method+" "+path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	// Try exact match first
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	// Try prefix match (for paths ending with "/")
	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}

// ParseIPList turns a list of addresses into a lookup set, skipping blanks.
func ParseIPList(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, entry := range list {
		for _, ip := range strings.Split(entry, ",") {
			if ip = strings.TrimSpace(ip); ip != "" {
				result[ip] = true
			}
		}
	}
	return result
}
