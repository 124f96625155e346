// Package engine orchestrates the analyzers into a single ATS scoring call.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/formatting"
	"github.com/jonathan/ats-scorer/internal/improvements"
	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/quality"
	"github.com/jonathan/ats-scorer/internal/resume"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/semantic"
	"github.com/jonathan/ats-scorer/internal/similarity"
	"github.com/jonathan/ats-scorer/internal/structure"
	"github.com/jonathan/ats-scorer/internal/taxonomy"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Analyzer names used for timing metrics
const (
	analyzerStructure  = "structure"
	analyzerQuality    = "quality"
	analyzerFormatting = "formatting"
	analyzerKeywords   = "keywords"
	analyzerSimilarity = "similarity"
)

// Adjuster returns a semantic correction for a resume against a job description.
// *semantic.Adjuster satisfies it.
type Adjuster interface {
	Adjust(ctx context.Context, resumeText, jobText string, missing []string) (float64, error)
}

// maxSemanticGaps caps how many missing keywords are sent to the adjuster
const maxSemanticGaps = 15

// Options holds the engine's collaborators. Nil fields are built from the taxonomy.
type Options struct {
	Taxonomy   *taxonomy.Taxonomy
	Mode       similarity.Mode
	Extractor  *keywords.Extractor
	Scorer     *similarity.Scorer
	Structure  *structure.Analyzer
	Quality    *quality.Analyzer
	Formatting *formatting.Checker
	Aggregator *scoring.Aggregator
	Generator  *improvements.Generator
	// Adjuster is optional; without it no semantic adjustment is applied
	Adjuster Adjuster
	// Strategy is used when a request does not name one
	Strategy types.Strategy
	Logger   *zap.Logger
	Metrics  *observability.Metrics
}

// Engine scores resumes. It holds no per-request state and is safe for concurrent use.
type Engine struct {
	extractor  *keywords.Extractor
	scorer     *similarity.Scorer
	structure  *structure.Analyzer
	quality    *quality.Analyzer
	formatting *formatting.Checker
	aggregator *scoring.Aggregator
	generator  *improvements.Generator
	adjuster   Adjuster
	strategy   types.Strategy
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	tax := opts.Taxonomy
	if tax == nil {
		tax = taxonomy.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	switch opts.Strategy {
	case types.StrategyAuto, types.StrategyComprehensive, types.StrategyIndustryStandard:
	default:
		return nil, &Error{Message: fmt.Sprintf("unknown strategy %q", opts.Strategy)}
	}

	e := &Engine{
		extractor:  opts.Extractor,
		scorer:     opts.Scorer,
		structure:  opts.Structure,
		quality:    opts.Quality,
		formatting: opts.Formatting,
		aggregator: opts.Aggregator,
		generator:  opts.Generator,
		adjuster:   opts.Adjuster,
		strategy:   opts.Strategy,
		logger:     logger,
		metrics:    opts.Metrics,
	}
	if e.extractor == nil {
		e.extractor = keywords.NewExtractor(tax)
	}
	if e.scorer == nil {
		scorer, err := similarity.NewScorer(opts.Mode, e.extractor, logger)
		if err != nil {
			return nil, &Error{Message: "failed to create similarity scorer", Cause: err}
		}
		e.scorer = scorer
	}
	if e.structure == nil {
		e.structure = structure.NewAnalyzer(tax)
	}
	if e.quality == nil {
		e.quality = quality.NewAnalyzer(tax)
	}
	if e.formatting == nil {
		e.formatting = formatting.NewChecker()
	}
	if e.aggregator == nil {
		e.aggregator = scoring.NewAggregator()
	}
	if e.generator == nil {
		e.generator = improvements.NewGenerator(tax)
	}
	return e, nil
}

// Score runs every analyzer on the request and combines them into one result.
// Failures never escape: they come back as an unsuccessful result scoring 0.
func (e *Engine) Score(ctx context.Context, req *types.ScoreRequest) (result *types.ScoreResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("scoring panicked", zap.Any("panic", r))
			result = e.failed(&Error{Message: fmt.Sprintf("internal error: %v", r)})
		}
	}()

	if req == nil {
		return e.failed(&Error{Message: "request is required"})
	}
	if err := req.Validate(); err != nil {
		return e.failed(&Error{Message: "invalid request", Cause: err})
	}
	if err := ctx.Err(); err != nil {
		return e.failed(&Error{Message: "scoring cancelled", Cause: err})
	}

	result, err := e.score(ctx, req)
	if err != nil {
		return e.failed(err)
	}

	e.metrics.ObserveScore(string(result.Method), result.Score)
	e.logger.Debug("scored resume",
		zap.Float64("score", result.Score),
		zap.String("method", string(result.Method)),
		zap.Duration("duration", time.Since(start)))
	return result
}

func (e *Engine) score(ctx context.Context, req *types.ScoreRequest) (*types.ScoreResult, error) {
	doc := req.Resume
	text := resume.BodyText(doc)

	c := scoring.Components{
		Sections:   countSections(doc),
		HasContact: resume.HasContact(doc),
		Empty:      doc.IsEmpty(),
	}
	var match *types.MatchResult

	// each goroutine writes a distinct field
	var g errgroup.Group
	g.Go(e.timed(analyzerStructure, func() { c.Structure = e.structure.Analyze(doc) }))
	g.Go(e.timed(analyzerQuality, func() { c.Quality = e.quality.Analyze(doc) }))
	g.Go(e.timed(analyzerFormatting, func() { c.Formatting = e.formatting.Check(doc) }))
	g.Go(e.timed(analyzerKeywords, func() { c.ResumeKeywords = e.extractor.Extract(text) }))
	if req.HasJobTarget() {
		g.Go(e.timed(analyzerSimilarity, func() {
			c.Match = e.scorer.CosineScore(text, req.JobDescription, req.Keywords)
			if strings.TrimSpace(req.JobDescription) != "" {
				match = e.scorer.CalculateSimilarity(req.JobDescription, text)
			} else {
				match = e.scorer.MatchKeywordSet(req.Keywords, text)
			}
		}))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if c.Match != nil && c.Match.Method != e.scorer.Method() {
		e.metrics.ObserveFallback()
		e.logger.Warn("similarity fell back to simple keyword matching",
			zap.String("primary", string(e.scorer.Method())))
	}

	strategy := req.Strategy
	if strategy == types.StrategyAuto {
		strategy = e.strategy
	}
	method, breakdown := e.aggregator.Aggregate(c, strategy)

	if e.adjuster != nil && !c.Empty && strings.TrimSpace(req.JobDescription) != "" {
		e.applySemantic(ctx, &breakdown, text, req.JobDescription, topGaps(match))
	}

	return &types.ScoreResult{
		Success:     true,
		Score:       breakdown.Overall,
		Method:      method,
		Details:     breakdown,
		Suggestions: scoring.Suggestions(c),
		AIImprovements: e.generator.Generate(improvements.Input{
			Resume:     doc,
			Structure:  c.Structure,
			Quality:    c.Quality,
			Formatting: c.Formatting,
			Match:      match,
		}),
	}, nil
}

func (e *Engine) applySemantic(ctx context.Context, b *types.ScoreBreakdown, resumeText, jobText string, missing []string) {
	delta, err := e.adjuster.Adjust(ctx, resumeText, jobText, missing)
	outcome := semantic.Outcome(err)
	e.metrics.ObserveSemantic(outcome)
	if err != nil {
		e.logger.Warn("semantic adjustment skipped",
			zap.String("outcome", outcome),
			zap.Error(err))
		return
	}
	scoring.ApplySemantic(b, delta)
}

// topGaps returns the highest-priority missing keywords, technical first.
func topGaps(match *types.MatchResult) []string {
	if match == nil {
		return nil
	}
	gaps := match.MissingKeywords
	if len(gaps) > maxSemanticGaps {
		gaps = gaps[:maxSemanticGaps]
	}
	return append([]string(nil), gaps...)
}

// timed wraps an analyzer for the errgroup, recording its duration and turning a
// panic into an error so it cannot take down the process from another goroutine.
func (e *Engine) timed(name string, fn func()) func() error {
	return func() (err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("analyzer panicked", zap.String("analyzer", name), zap.Any("panic", r))
				err = &Error{Message: fmt.Sprintf("%s analyzer failed: %v", name, r)}
			}
			e.metrics.ObserveAnalyzer(name, time.Since(start))
		}()
		fn()
		return nil
	}
}

func (e *Engine) failed(err error) *types.ScoreResult {
	e.metrics.ObserveFailure()
	e.logger.Warn("scoring failed", zap.Error(err))
	return &types.ScoreResult{
		Success:        false,
		Score:          0,
		Suggestions:    []string{},
		AIImprovements: []types.Improvement{},
		Error:          err.Error(),
	}
}

// CalculateSimilarity partitions the job's keywords into those the resume has and lacks
func (e *Engine) CalculateSimilarity(jobText, resumeText string) *types.MatchResult {
	return e.scorer.CalculateSimilarity(jobText, resumeText)
}

// CalculateTFIDFCosineScore compares resume text with job text, or with kw when it
// holds keywords.
func (e *Engine) CalculateTFIDFCosineScore(resumeText, jobText string, kw *types.KeywordSet) *types.TFIDFResult {
	return e.scorer.CosineScore(resumeText, jobText, kw)
}

// ExtractKeywords buckets the keywords found in text
func (e *Engine) ExtractKeywords(text string) *types.KeywordSet {
	return e.extractor.Extract(text)
}

// Improvements returns prioritized suggestions for a resume, optionally against a job.
func (e *Engine) Improvements(doc *types.ResumeDocument, jobText string) []types.Improvement {
	if doc == nil {
		return []types.Improvement{}
	}
	in := improvements.Input{
		Resume:     doc,
		Structure:  e.structure.Analyze(doc),
		Quality:    e.quality.Analyze(doc),
		Formatting: e.formatting.Check(doc),
	}
	if strings.TrimSpace(jobText) != "" {
		in.Match = e.scorer.CalculateSimilarity(jobText, resume.BodyText(doc))
	}
	return e.generator.Generate(in)
}

func countSections(doc *types.ResumeDocument) int {
	n := 0
	for _, section := range doc.Sections {
		for _, b := range resume.VisibleBullets(section) {
			if strings.TrimSpace(b.Text) != "" {
				n++
				break
			}
		}
	}
	return n
}
