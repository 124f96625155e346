// Package llm provides the language model client used for optional semantic scoring.
package llm

import "fmt"

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for short judgements such as a bounded fit adjustment
	TierLite ModelTier = "lite"
	// TierStandard is for structured output over longer inputs
	TierStandard ModelTier = "standard"
	// TierAdvanced is for multi-step reasoning
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider, currently the only backend
const ProviderGemini Provider = "gemini"

// DefaultTemperature keeps scoring judgements stable across runs
const DefaultTemperature float32 = 0.1

// Config holds the model configuration
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: DefaultTemperature,
	}
}

// ParseTier converts a configured tier name, defaulting to TierLite when empty.
func ParseTier(name string) (ModelTier, error) {
	switch ModelTier(name) {
	case "":
		return TierLite, nil
	case TierLite, TierStandard, TierAdvanced:
		return ModelTier(name), nil
	default:
		return "", fmt.Errorf("unknown model tier %q", name)
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:    c.Provider,
		Models:      make(map[ModelTier]string, len(c.Models)+1),
		Temperature: c.Temperature,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
