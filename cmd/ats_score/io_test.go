package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
)

func TestValidateInput(t *testing.T) {
	useDefaults(t)

	tests := []struct {
		name      string
		schema    string
		content   string
		wantError bool
	}{
		{
			name:    "valid resume",
			schema:  schemas.ResumeSchema,
			content: `{"name": "Ada", "sections": [{"title": "Experience", "bullets": [{"text": "Built compilers"}]}]}`,
		},
		{
			name:      "section without title",
			schema:    schemas.ResumeSchema,
			content:   `{"name": "Ada", "sections": [{"bullets": []}]}`,
			wantError: true,
		},
		{
			name:    "valid keyword set",
			schema:  schemas.KeywordSetSchema,
			content: `{"technical_keywords": ["Go"]}`,
		},
		{
			name:      "keyword frequency below one",
			schema:    schemas.KeywordSetSchema,
			content:   `{"high_frequency_keywords": [{"keyword": "go", "frequency": 0}]}`,
			wantError: true,
		},
		{
			name:    "unknown schema is skipped",
			schema:  "schemas/missing.schema.json",
			content: `{"anything": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "input.json", tt.content)
			err := validateInput(tt.schema, path)
			if tt.wantError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "does not validate")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadResumeFile(t *testing.T) {
	useDefaults(t)

	doc, err := loadResumeFile(resumeFixture)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", doc.Name)

	_, err = loadResumeFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadKeywordSetFile(t *testing.T) {
	useDefaults(t)

	path := writeFile(t, "keywords.json", `{"technical_keywords": ["Kubernetes", "Go"], "soft_skills": ["leadership"]}`)
	kw, err := loadKeywordSetFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kubernetes", "Go"}, kw.Technical)
	assert.Equal(t, []string{"leadership"}, kw.SoftSkills)

	bad := writeFile(t, "bad.json", `{"technical_keywords": `)
	_, err = loadKeywordSetFile(bad)
	assert.Error(t, err)
}

func TestLoadJobFile(t *testing.T) {
	text, err := loadJobFile(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, text)

	text, err = loadJobFile(context.Background(), jobFixture)
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes")

	html := writeFile(t, "job.html", `<html><body><nav>Menu</nav><main><h1>Platform Engineer</h1><p>Operate Terraform and Kafka.</p></main></body></html>`)
	text, err = loadJobFile(context.Background(), html)
	require.NoError(t, err)
	assert.Contains(t, text, "Terraform")
	assert.NotContains(t, text, "<p>")

	_, err = loadJobFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadJobFile_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="job-description"><p>Go engineer with Kafka</p></div></body></html>`))
	}))
	defer server.Close()

	text, err := loadJobFile(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Go engineer with Kafka", text)
}

func TestWriteJSON(t *testing.T) {
	out := useDefaults(t)

	t.Run("stdout", func(t *testing.T) {
		out.Reset()
		require.NoError(t, writeJSON("", map[string]int{"score": 72}))
		assert.JSONEq(t, `{"score": 72}`, out.String())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, writeJSON(path, types.NewKeywordSet()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		var kw types.KeywordSet
		require.NoError(t, json.Unmarshal(content, &kw))
		assert.True(t, kw.IsEmpty())
	})

	t.Run("unwritable path", func(t *testing.T) {
		err := writeJSON(filepath.Join(t.TempDir(), "missing", "out.json"), 1)
		assert.Error(t, err)
	})
}
