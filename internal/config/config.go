// Package config loads engine configuration from a file, ATS_ environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/semantic"
	"github.com/jonathan/ats-scorer/internal/server/ratelimit"
)

// EnvPrefix prefixes every environment override, e.g. ATS_SIMILARITY_MODE
const EnvPrefix = "ATS"

// APIKeyEnv is read when no semantic API key is configured
const APIKeyEnv = "GEMINI_API_KEY"

// Config is the complete engine and CLI configuration
type Config struct {
	Similarity SimilarityConfig `mapstructure:"similarity"`
	Taxonomy   TaxonomyConfig   `mapstructure:"taxonomy"`
	Scoring    ScoringConfig    `mapstructure:"scoring"`
	Semantic   SemanticConfig   `mapstructure:"semantic"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Server     ServerConfig     `mapstructure:"server"`
}

// SimilarityConfig selects the resume/job comparison strategy
type SimilarityConfig struct {
	Mode string `mapstructure:"mode" validate:"oneof=tfidf simple"`
}

// TaxonomyConfig points at an optional taxonomy override file
type TaxonomyConfig struct {
	Path string `mapstructure:"path" validate:"omitempty,file"`
}

// ScoringConfig holds aggregation defaults
type ScoringConfig struct {
	Strategy string `mapstructure:"strategy" validate:"omitempty,oneof=comprehensive industry_standard"`
}

// SemanticConfig configures the optional LLM adjustment
type SemanticConfig struct {
	Enabled           bool                 `mapstructure:"enabled"`
	APIKey            string               `mapstructure:"apiKey"`
	Tier              string               `mapstructure:"tier" validate:"oneof=lite standard advanced"`
	Model             string               `mapstructure:"model"`
	Timeout           time.Duration        `mapstructure:"timeout" validate:"gt=0"`
	RequestsPerMinute int                  `mapstructure:"requestsPerMinute" validate:"gte=0"`
	Burst             int                  `mapstructure:"burst" validate:"gte=0"`
	CircuitBreaker    CircuitBreakerConfig `mapstructure:"circuitBreaker"`
}

// CircuitBreakerConfig configures the breaker around model calls
type CircuitBreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	MaxRequests      uint32        `mapstructure:"maxRequests" validate:"gte=1"`
	Interval         time.Duration `mapstructure:"interval" validate:"gte=0"`
	Timeout          time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MinRequests      uint32        `mapstructure:"minRequests" validate:"gte=1"`
	FailureThreshold float64       `mapstructure:"failureThreshold" validate:"gt=0,lte=1"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// MetricsConfig configures the Prometheus textfile output
type MetricsConfig struct {
	File string `mapstructure:"file"`
}

// ServerConfig configures the HTTP scoring API
type ServerConfig struct {
	Port         int             `mapstructure:"port" validate:"gte=1,lte=65535"`
	MaxBodyBytes int64           `mapstructure:"maxBodyBytes" validate:"gt=0"`
	RateLimit    RateLimitConfig `mapstructure:"rateLimit"`
}

// RateLimitConfig configures per-client request limits. ScoreLimit applies to the
// scoring and improvement endpoints; everything else uses DefaultLimit.
type RateLimitConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	DefaultLimit  int           `mapstructure:"defaultLimit" validate:"gte=1"`
	ScoreLimit    int           `mapstructure:"scoreLimit" validate:"gte=1"`
	Window        time.Duration `mapstructure:"window" validate:"gt=0"`
	Whitelist     []string      `mapstructure:"whitelist"`
	Blacklist     []string      `mapstructure:"blacklist"`
	CleanupPeriod time.Duration `mapstructure:"cleanupPeriod" validate:"gte=0"`
}

// Error represents a configuration loading or validation failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// LoadConfig reads configuration. An explicit path must exist; with an empty path
// an ats.yaml in the working directory is used when present.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, &Error{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ats")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, &Error{Message: "failed to parse config file", Cause: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &Error{Message: "failed to unmarshal config", Cause: err}
	}
	if cfg.Semantic.APIKey == "" {
		cfg.Semantic.APIKey = os.Getenv(APIKeyEnv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("similarity.mode", "tfidf")
	v.SetDefault("taxonomy.path", "")
	v.SetDefault("scoring.strategy", "")

	d := semantic.DefaultSettings()
	v.SetDefault("semantic.enabled", false)
	v.SetDefault("semantic.apiKey", "")
	v.SetDefault("semantic.tier", string(d.Tier))
	v.SetDefault("semantic.model", "")
	v.SetDefault("semantic.timeout", d.Timeout)
	v.SetDefault("semantic.requestsPerMinute", d.RequestsPerMinute)
	v.SetDefault("semantic.burst", d.Burst)
	v.SetDefault("semantic.circuitBreaker.enabled", d.Breaker.Enabled)
	v.SetDefault("semantic.circuitBreaker.maxRequests", d.Breaker.MaxRequests)
	v.SetDefault("semantic.circuitBreaker.interval", d.Breaker.Interval)
	v.SetDefault("semantic.circuitBreaker.timeout", d.Breaker.Timeout)
	v.SetDefault("semantic.circuitBreaker.minRequests", d.Breaker.MinRequests)
	v.SetDefault("semantic.circuitBreaker.failureThreshold", d.Breaker.FailureThreshold)

	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("metrics.file", "")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.maxBodyBytes", 1<<20)
	v.SetDefault("server.rateLimit.enabled", true)
	v.SetDefault("server.rateLimit.defaultLimit", 600)
	v.SetDefault("server.rateLimit.scoreLimit", 60)
	v.SetDefault("server.rateLimit.window", time.Minute)
	v.SetDefault("server.rateLimit.whitelist", []string{})
	v.SetDefault("server.rateLimit.blacklist", []string{})
	v.SetDefault("server.rateLimit.cleanupPeriod", 5*time.Minute)
}

// Validate checks field ranges and cross-field rules
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &Error{Message: "invalid configuration", Cause: err}
	}
	if c.Semantic.Enabled && c.Semantic.APIKey == "" {
		return &Error{Message: fmt.Sprintf("semantic scoring requires an API key (set %s or semantic.apiKey)", APIKeyEnv)}
	}
	return nil
}

// SemanticSettings converts the semantic section into adjuster settings
func (c *Config) SemanticSettings() (semantic.Settings, error) {
	tier, err := llm.ParseTier(c.Semantic.Tier)
	if err != nil {
		return semantic.Settings{}, &Error{Message: "invalid semantic tier", Cause: err}
	}
	cb := c.Semantic.CircuitBreaker
	return semantic.Settings{
		Tier:              tier,
		Timeout:           c.Semantic.Timeout,
		RequestsPerMinute: c.Semantic.RequestsPerMinute,
		Burst:             c.Semantic.Burst,
		Breaker: semantic.BreakerSettings{
			Enabled:          cb.Enabled,
			MaxRequests:      cb.MaxRequests,
			Interval:         cb.Interval,
			Timeout:          cb.Timeout,
			MinRequests:      cb.MinRequests,
			FailureThreshold: cb.FailureThreshold,
		},
	}, nil
}

// LLMConfig returns the model configuration, with the configured model pinned to the semantic tier
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.Semantic.Model == "" {
		return cfg
	}
	tier, err := llm.ParseTier(c.Semantic.Tier)
	if err != nil {
		return cfg
	}
	return cfg.WithModel(tier, c.Semantic.Model)
}

// RateLimitSettings converts the server rate limit section for the HTTP limiter
func (c *Config) RateLimitSettings() *ratelimit.Config {
	rl := c.Server.RateLimit
	return &ratelimit.Config{
		Enabled:         rl.Enabled,
		DefaultLimit:    rl.DefaultLimit,
		DefaultWindow:   rl.Window,
		CleanupInterval: rl.CleanupPeriod,
		Whitelist:       ratelimit.ParseIPList(rl.Whitelist),
		Blacklist:       ratelimit.ParseIPList(rl.Blacklist),
		EndpointConfigs: ratelimit.ScoringEndpointConfigs(rl.ScoreLimit, rl.Window),
	}
}
