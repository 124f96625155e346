package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/ats-scorer/internal/engine"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/server/ratelimit"
	"github.com/jonathan/ats-scorer/internal/types"
)

const weakResumeJSON = `{
  "name": "Sam Rivera",
  "email": "sam@example.com",
  "sections": [{"title": "Experience", "bullets": [{"text": "Helped with various tasks"}]}]
}`

func newTestServer(t *testing.T, rl *ratelimit.Config) *Server {
	t.Helper()
	metrics := observability.NewMetrics()
	eng, err := engine.New(engine.Options{Metrics: metrics})
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	if rl == nil {
		rl = &ratelimit.Config{Enabled: false}
	}
	s, err := New(Config{
		Port:      0,
		RateLimit: rl,
		Engine:    eng,
		Metrics:   metrics,
	})
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("../../testdata/resumes/valid.json")
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	return data
}

func loadJob(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/jobs/backend.txt")
	if err != nil {
		t.Fatalf("failed to read job: %v", err)
	}
	return string(data)
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.1:1234"
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_RequiresEngine(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error without engine")
	}
}

// TestHealthEndpoint tests the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/health", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestScoreEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"resume": ` + string(loadFixture(t)) + `, "job_description": ` + mustJSON(t, loadJob(t)) + `}`

	w := do(t, s, http.MethodPost, "/v1/score", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	var result types.ScoreResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !result.Success {
		t.Errorf("expected success, got error %q", result.Error)
	}
	if result.Method != types.MethodIndustryStandard {
		t.Errorf("expected industry standard method, got %q", result.Method)
	}
	if result.Score <= 0 || result.Score > 100 {
		t.Errorf("score out of range: %v", result.Score)
	}
}

func TestScoreEndpoint_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"invalid JSON", `{"resume": `, http.StatusBadRequest},
		{"missing resume", `{"job_description": "Go engineer"}`, http.StatusBadRequest},
		{"unknown strategy", `{"resume": ` + weakResumeJSON + `, "strategy": "fastest"}`, http.StatusUnprocessableEntity},
	}

	s := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/score", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestScoreEndpoint_FailedResultBody(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodPost, "/v1/score", `{"resume": `+weakResumeJSON+`, "strategy": "fastest"}`)

	var result types.ScoreResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if result.Success || result.Score != 0 || result.Error == "" {
		t.Errorf("expected failed result with score 0, got %+v", result)
	}
}

func TestScoreEndpoint_BodyTooLarge(t *testing.T) {
	eng, err := engine.New(engine.Options{})
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	s, err := New(Config{Engine: eng, MaxBodyBytes: 64, RateLimit: &ratelimit.Config{Enabled: false}})
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	defer s.rateLimiter.Stop()

	w := do(t, s, http.MethodPost, "/v1/score", `{"resume": `+weakResumeJSON+`}`)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", w.Code)
	}
}

func TestSimilarityEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodPost, "/v1/similarity", SimilarityRequest{
		JobDescription: "Looking for a Go developer with Kubernetes and AWS experience",
		ResumeText:     "Built Go services and deployed them to Kubernetes",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var match types.MatchResult
	if err := json.Unmarshal(w.Body.Bytes(), &match); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !contains(match.MatchingKeywords, "Kubernetes") {
		t.Errorf("expected Kubernetes to match, got %v", match.MatchingKeywords)
	}
	if !contains(match.MissingKeywords, "AWS") {
		t.Errorf("expected AWS to be missing, got %v", match.MissingKeywords)
	}
}

func TestSimilarityEndpoint_Validation(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name string
		body SimilarityRequest
	}{
		{"missing job", SimilarityRequest{ResumeText: "Go developer"}},
		{"missing resume", SimilarityRequest{JobDescription: "Go developer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/similarity", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestKeywordsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodPost, "/v1/keywords", KeywordsRequest{
		Text: "<html><body><p>Go developer with Kubernetes and Docker experience</p></body></html>",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var set types.KeywordSet
	if err := json.Unmarshal(w.Body.Bytes(), &set); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !contains(set.Technical, "Kubernetes") || !contains(set.Technical, "Docker") {
		t.Errorf("expected technical keywords, got %v", set.Technical)
	}
}

func TestImprovementsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodPost, "/v1/improvements", `{"resume": `+weakResumeJSON+`, "job_description": "Kubernetes and Terraform engineer"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ImprovementsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Improvements) == 0 {
		t.Error("expected improvements for a weak resume")
	}

	w = do(t, s, http.MethodPost, "/v1/improvements", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 without resume, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	do(t, s, http.MethodPost, "/v1/score", `{"resume": `+weakResumeJSON+`}`)

	w := do(t, s, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ats_scores_total") {
		t.Error("expected scores counter in metrics output")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/v1/score", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodOptions, "/v1/score", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header")
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, &ratelimit.Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: []ratelimit.EndpointConfig{{Path: "/v1/keywords", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1}},
	})

	w := do(t, s, http.MethodPost, "/v1/keywords", KeywordsRequest{Text: "Go"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") != "1" {
		t.Errorf("expected limit header 1, got %q", w.Header().Get("X-RateLimit-Limit"))
	}

	w = do(t, s, http.MethodPost, "/v1/keywords", KeywordsRequest{Text: "Go"})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["error"] != "rate_limit_exceeded" {
		t.Errorf("expected rate_limit_exceeded, got %v", resp["error"])
	}

	// Health stays reachable
	if w := do(t, s, http.MethodGet, "/health", nil); w.Code != http.StatusOK {
		t.Errorf("expected health to bypass rate limit, got %d", w.Code)
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	return string(data)
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

func TestStart_StopsWhenContextDone(t *testing.T) {
	eng, err := engine.New(engine.Options{})
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	s, err := New(Config{Port: 0, Engine: eng})
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Start(ctx); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
