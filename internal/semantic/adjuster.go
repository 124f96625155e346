package semantic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/prompts"
	"github.com/jonathan/ats-scorer/internal/scoring"
)

const (
	promptFile = "scoring.json"
	promptKey  = "semantic-fit"

	// maxPromptChars bounds each text sent to the model
	maxPromptChars = 12000
)

// Outcomes reported for a semantic assessment
const (
	OutcomeApplied     = "applied"
	OutcomeFailed      = "failed"
	OutcomeOpen        = "circuit_open"
	OutcomeRateLimited = "rate_limited"
)

// ErrRateLimited is returned when the adjuster's call budget is exhausted
var ErrRateLimited = errors.New("semantic call rate limit exceeded")

// BreakerSettings configures the circuit breaker around model calls
type BreakerSettings struct {
	Enabled          bool
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	MinRequests      uint32
	FailureThreshold float64
}

// Settings configures an Adjuster
type Settings struct {
	Tier    llm.ModelTier
	Timeout time.Duration
	// RequestsPerMinute of zero disables rate limiting
	RequestsPerMinute int
	Burst             int
	Breaker           BreakerSettings
}

// DefaultSettings returns conservative settings for interactive scoring
func DefaultSettings() Settings {
	return Settings{
		Tier:              llm.TierLite,
		Timeout:           8 * time.Second,
		RequestsPerMinute: 30,
		Burst:             5,
		Breaker: BreakerSettings{
			Enabled:          true,
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          30 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

// Assessment is the model's raw answer
type Assessment struct {
	Delta  float64 `json:"delta"`
	Reason string  `json:"reason"`
}

// Adjuster asks an LLM for a bounded correction to the keyword-based score
type Adjuster struct {
	client   llm.Client
	settings Settings
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker[float64]
	logger   *zap.Logger
}

// NewAdjuster creates an adjuster over the given client
func NewAdjuster(client llm.Client, settings Settings, logger *zap.Logger) (*Adjuster, error) {
	if client == nil {
		return nil, &Error{Message: "llm client is required"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultSettings().Timeout
	}
	if settings.Tier == "" {
		settings.Tier = llm.TierLite
	}

	a := &Adjuster{
		client:   client,
		settings: settings,
		logger:   logger,
	}
	if settings.RequestsPerMinute > 0 {
		burst := settings.Burst
		if burst < 1 {
			burst = 1
		}
		a.limiter = rate.NewLimiter(rate.Limit(float64(settings.RequestsPerMinute)/60.0), burst)
	}
	if settings.Breaker.Enabled {
		a.breaker = newBreaker(settings.Breaker, logger)
	}
	return a, nil
}

func newBreaker(cfg BreakerSettings, logger *zap.Logger) *gobreaker.CircuitBreaker[float64] {
	settings := gobreaker.Settings{
		Name:        "semantic-adjuster",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests == 0 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests && failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}
	return gobreaker.NewCircuitBreaker[float64](settings)
}

// Adjust returns the raw semantic delta for a resume against a job description,
// clamped to the supported range. missing lists the job keywords the resume lacks
// so the model can weigh whether those gaps are critical. Any error means the
// caller applies no adjustment.
func (a *Adjuster) Adjust(ctx context.Context, resumeText, jobText string, missing []string) (float64, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return 0, &Error{Message: "resume and job text are required"}
	}
	if a.limiter != nil && !a.limiter.Allow() {
		return 0, &Error{Message: "call skipped", Cause: ErrRateLimited}
	}

	ctx, cancel := context.WithTimeout(ctx, a.settings.Timeout)
	defer cancel()

	call := func() (float64, error) {
		return a.assess(ctx, resumeText, jobText, missing)
	}

	var delta float64
	var err error
	if a.breaker != nil {
		delta, err = a.breaker.Execute(call)
	} else {
		delta, err = call()
	}
	if err != nil {
		var semErr *Error
		if errors.As(err, &semErr) {
			return 0, err
		}
		return 0, &Error{Message: "assessment failed", Cause: err}
	}

	a.logger.Debug("semantic adjustment", zap.Float64("delta", delta))
	return delta, nil
}

func (a *Adjuster) assess(ctx context.Context, resumeText, jobText string, missing []string) (float64, error) {
	prompt, err := prompts.Render(promptFile, promptKey, map[string]string{
		"JobDescription":  truncate(jobText, maxPromptChars),
		"Resume":          truncate(resumeText, maxPromptChars),
		"MissingKeywords": formatGaps(missing),
	})
	if err != nil {
		return 0, &Error{Message: "failed to build prompt", Cause: err}
	}

	raw, err := a.client.GenerateJSON(ctx, prompt, a.settings.Tier)
	if err != nil {
		return 0, fmt.Errorf("failed to generate assessment: %w", err)
	}

	assessment, err := ParseAssessment(raw)
	if err != nil {
		return 0, err
	}
	return scoring.Clamp(assessment.Delta, -scoring.MaxSemanticDelta, scoring.MaxSemanticDelta), nil
}

// formatGaps renders missing keywords as a comma separated list, or "none".
func formatGaps(missing []string) string {
	gaps := make([]string, 0, len(missing))
	for _, kw := range missing {
		if kw = strings.TrimSpace(kw); kw != "" {
			gaps = append(gaps, kw)
		}
	}
	if len(gaps) == 0 {
		return "none"
	}
	return strings.Join(gaps, ", ")
}

// ParseAssessment decodes a model response, tolerating markdown code fences.
func ParseAssessment(raw string) (*Assessment, error) {
	cleaned := llm.CleanJSONBlock(raw)
	if cleaned == "" {
		return nil, &Error{Message: "empty assessment"}
	}
	var out struct {
		Delta  *float64 `json:"delta"`
		Reason string   `json:"reason"`
	}
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, &Error{Message: "failed to parse assessment", Cause: err}
	}
	if out.Delta == nil {
		return nil, &Error{Message: "assessment has no delta"}
	}
	return &Assessment{Delta: *out.Delta, Reason: out.Reason}, nil
}

// Outcome classifies the result of Adjust for logging and metrics
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeApplied
	case errors.Is(err, ErrRateLimited):
		return OutcomeRateLimited
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return OutcomeOpen
	default:
		return OutcomeFailed
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
