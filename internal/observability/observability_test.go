package observability

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestNewLogger(t *testing.T) {
	for _, tc := range []struct {
		json  bool
		debug bool
	}{
		{false, false},
		{true, false},
		{true, true},
	} {
		logger, err := NewLogger(tc.json, tc.debug)
		require.NoError(t, err)
		assert.Equal(t, tc.debug, logger.Core().Enabled(-1))
	}
}

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()

	m.ObserveScore("comprehensive", 72.5)
	m.ObserveScore("comprehensive", 80)
	m.ObserveScore("industry_standard_tfidf", 65)
	m.ObserveFailure()
	m.ObserveFallback()
	m.ObserveSemantic("applied")
	m.ObserveSemantic("failed")
	m.ObserveSemantic("failed")
	m.ObserveAnalyzer("structure", 2*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.scores.WithLabelValues("comprehensive")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scores.WithLabelValues("industry_standard_tfidf")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.semantic.WithLabelValues("failed")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.analyzerDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveScore("comprehensive", 50)
		m.ObserveFailure()
		m.ObserveFallback()
		m.ObserveSemantic("applied")
		m.ObserveAnalyzer("quality", time.Millisecond)
	})
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.WriteToTextfile(filepath.Join(t.TempDir(), "ats.prom")))
}

func TestMetrics_WriteToTextfile(t *testing.T) {
	m := NewMetrics()
	m.ObserveScore("comprehensive", 91)

	path := filepath.Join(t.TempDir(), "ats.prom")
	require.NoError(t, m.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ats_scores_total{method="comprehensive"} 1`)
}

func TestPrintScoreResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreResult(&types.ScoreResult{
		Success: true,
		Score:   78.3,
		Method:  types.MethodIndustryStandard,
		Details: types.ScoreBreakdown{
			Structure:          100,
			Keyword:            64,
			TFIDF:              55.5,
			Quality:            70,
			Formatting:         85,
			SemanticAdjustment: -1.5,
		},
		Suggestions: []string{"Add these missing keywords: Kubernetes, Terraform"},
	})
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "78.3")
	assert.Contains(t, output, "TF-IDF:      55.5")
	assert.Contains(t, output, "Semantic:    -1.5")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintScoreResult_Failure(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreResult(&types.ScoreResult{Error: "resume is required"})

	assert.Contains(t, buf.String(), "ATS SCORE FAILED")
	assert.Contains(t, buf.String(), "resume is required")
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(&types.MatchResult{
		SimilarityScore:  61.2,
		TechnicalScore:   50,
		MatchingKeywords: []string{"Go", "Docker"},
		MissingKeywords:  []string{"Kubernetes", "Terraform", "AWS", "GCP", "Kafka", "Redis", "gRPC"},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH")
	assert.Contains(t, output, "• Docker")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywords(types.NewKeywordSet())
	assert.Empty(t, buf.String())

	set := types.NewKeywordSet()
	set.Technical = []string{"Go"}
	set.HighFrequency = []types.HighFrequencyKeyword{{Keyword: "experience", Frequency: 4, Importance: types.ImportanceHigh}}
	p.PrintKeywords(set)
	assert.Contains(t, buf.String(), "experience (4, high)")
}

func TestPrintImprovements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImprovements(nil)
	assert.Contains(t, buf.String(), "NO IMPROVEMENTS NEEDED")

	buf.Reset()
	p.PrintImprovements([]types.Improvement{
		{Title: "Add missing keywords", Priority: types.PriorityHigh, ImpactScore: 10, SpecificSuggestion: "Mention Kubernetes"},
	})
	assert.Contains(t, buf.String(), "[high 10/10] Add missing keywords")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
