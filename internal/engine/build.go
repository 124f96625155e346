package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/semantic"
	"github.com/jonathan/ats-scorer/internal/similarity"
	"github.com/jonathan/ats-scorer/internal/taxonomy"
	"github.com/jonathan/ats-scorer/internal/types"
)

// FromConfig builds an engine from loaded configuration. When semantic adjustment is
// enabled it opens an LLM client; the returned close function releases it.
func FromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) (*Engine, func() error, error) {
	noop := func() error { return nil }
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tax := taxonomy.Default()
	if cfg.Taxonomy.Path != "" {
		loaded, err := taxonomy.Load(cfg.Taxonomy.Path)
		if err != nil {
			return nil, noop, &Error{Message: "failed to load taxonomy", Cause: err}
		}
		tax = loaded
		logger.Debug("loaded taxonomy override",
			zap.String("path", cfg.Taxonomy.Path),
			zap.String("version", tax.Version()))
	}

	opts := Options{
		Taxonomy: tax,
		Mode:     similarity.Mode(cfg.Similarity.Mode),
		Strategy: types.Strategy(cfg.Scoring.Strategy),
		Logger:   logger,
		Metrics:  metrics,
	}

	closeFn := noop
	if cfg.Semantic.Enabled {
		if cfg.Semantic.APIKey == "" {
			return nil, noop, &Error{Message: "semantic adjustment requires " + config.APIKeyEnv}
		}
		settings, err := cfg.SemanticSettings()
		if err != nil {
			return nil, noop, &Error{Message: "invalid semantic settings", Cause: err}
		}
		client, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.Semantic.APIKey)
		if err != nil {
			return nil, noop, &Error{Message: "failed to create llm client", Cause: err}
		}
		adjuster, err := semantic.NewAdjuster(client, settings, logger)
		if err != nil {
			_ = client.Close()
			return nil, noop, &Error{Message: "failed to create semantic adjuster", Cause: err}
		}
		opts.Adjuster = adjuster
		closeFn = client.Close
	}

	e, err := New(opts)
	if err != nil {
		_ = closeFn()
		return nil, noop, err
	}
	return e, closeFn, nil
}
