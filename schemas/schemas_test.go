package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
)

var schemaFiles = []string{
	"resume.schema.json",
	"keyword_set.schema.json",
	"score_result.schema.json",
}

func TestSchemaFiles_Compile(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err)

			var v map[string]any
			require.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON")
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", v["$schema"])

			_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err)
		})
	}
}

func TestResumeSchema_AcceptsFixture(t *testing.T) {
	err := schemas.ValidateJSON("resume.schema.json", filepath.Join("..", "testdata", "resumes", "valid.json"))
	assert.NoError(t, err)
}

func TestResumeSchema_LooseVisibleParam(t *testing.T) {
	doc := `{"sections": [{"title": "Experience", "bullets": [
		{"text": "Built APIs", "params": {"visible": "false"}},
		{"text": "Ran on-call", "params": {"visible": 0}}
	]}]}`
	assert.NoError(t, schemas.ValidateBytes("resume.schema.json", []byte(doc)))

	bad := `{"sections": [{"title": "Experience", "bullets": [{"text": 42}]}]}`
	assert.Error(t, schemas.ValidateBytes("resume.schema.json", []byte(bad)))
}

func TestKeywordSetSchema_AcceptsKeywordSet(t *testing.T) {
	set := types.NewKeywordSet()
	set.Technical = []string{"Go", "Kubernetes"}
	set.HighFrequency = []types.HighFrequencyKeyword{
		{Keyword: "experience", Frequency: 4, Importance: types.ImportanceHigh},
	}
	data, err := json.Marshal(set)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateBytes("keyword_set.schema.json", data))
}

func TestScoreResultSchema(t *testing.T) {
	failed := types.ScoreResult{Success: false, Error: "resume is required"}
	data, err := json.Marshal(failed)
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateBytes("score_result.schema.json", data))

	ok := types.ScoreResult{
		Success: true,
		Score:   82.4,
		Method:  types.MethodComprehensive,
		Details: types.ScoreBreakdown{
			Structure:  100,
			Keyword:    70,
			Quality:    64.2,
			Formatting: 100,
			Weights:    map[string]float64{"structure": 0.25, "keyword": 0.3},
			Overall:    82.4,
		},
		Suggestions:    []string{"Add a professional summary"},
		AIImprovements: []types.Improvement{{Category: "summary", Title: "Add a summary", Priority: types.PriorityMedium, ImpactScore: 6}},
	}
	data, err = json.Marshal(ok)
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateBytes("score_result.schema.json", data))

	ok.Score = 140
	data, err = json.Marshal(ok)
	require.NoError(t, err)
	assert.Error(t, schemas.ValidateBytes("score_result.schema.json", data))
}
