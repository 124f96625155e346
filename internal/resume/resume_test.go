package resume

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResume_ValidFile(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "resumes", "valid.json")

	doc, err := LoadResume(path)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, "Jordan Lee", doc.Name)
	assert.Equal(t, "jordan.lee@example.com", doc.Email)
	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "sec_experience", doc.Sections[0].ID)
	require.Len(t, doc.Sections[0].Bullets, 4)
	assert.False(t, doc.Sections[0].Bullets[3].Visible())

	// IDs are assigned to the skills section and its bullet
	assert.NotEmpty(t, doc.Sections[2].ID)
	assert.NotEmpty(t, doc.Sections[2].Bullets[0].ID)
}

func TestLoadResume_FileNotFound(t *testing.T) {
	_, err := LoadResume("nonexistent_file.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "failed to read file")
}

func TestLoadResume_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.json")
	require.NoError(t, os.WriteFile(path, []byte("{ invalid json }"), 0644))

	_, err := LoadResume(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")
}

func TestAssignIDs_Deterministic(t *testing.T) {
	build := func() *types.ResumeDocument {
		return &types.ResumeDocument{
			Sections: []types.Section{
				{Title: "Experience", Bullets: []types.Bullet{{Text: "Built things"}, {Text: "Shipped things"}}},
			},
		}
	}

	a, b := build(), build()
	AssignIDs(a)
	AssignIDs(b)

	assert.Equal(t, a.Sections[0].ID, b.Sections[0].ID)
	assert.Equal(t, a.Sections[0].Bullets[1].ID, b.Sections[0].Bullets[1].ID)
	assert.NotEqual(t, a.Sections[0].Bullets[0].ID, a.Sections[0].Bullets[1].ID)
}

func TestAssignIDs_KeepsExisting(t *testing.T) {
	doc := &types.ResumeDocument{
		Sections: []types.Section{{ID: "keep", Title: "Skills", Bullets: []types.Bullet{{ID: "b1", Text: "Go"}}}},
	}
	AssignIDs(doc)
	assert.Equal(t, "keep", doc.Sections[0].ID)
	assert.Equal(t, "b1", doc.Sections[0].Bullets[0].ID)
}

func TestText_ExcludesHiddenBullets(t *testing.T) {
	doc := &types.ResumeDocument{
		Name:    "Sam",
		Email:   "sam@example.com",
		Summary: "Engineer",
		Sections: []types.Section{
			{
				Title: "Experience",
				Bullets: []types.Bullet{
					{Text: "Visible bullet"},
					{Text: "Hidden bool", Params: map[string]any{"visible": false}},
					{Text: "Hidden string", Params: map[string]any{"visible": "false"}},
					{Text: "Explicitly visible", Params: map[string]any{"visible": true}},
					{Text: "Unrelated params", Params: map[string]any{"bold": true}},
				},
			},
		},
	}

	text := Text(doc)
	assert.Contains(t, text, "Visible bullet")
	assert.Contains(t, text, "Explicitly visible")
	assert.Contains(t, text, "Unrelated params")
	assert.NotContains(t, text, "Hidden")
	assert.Contains(t, text, "sam@example.com")

	body := BodyText(doc)
	assert.NotContains(t, body, "sam@example.com")
	assert.NotContains(t, body, "Hidden")
	assert.Contains(t, body, "Engineer")

	assert.Equal(t, []string{"Visible bullet", "Explicitly visible", "Unrelated params"}, BulletTexts(doc))
	assert.Len(t, VisibleBullets(doc.Sections[0]), 3)
}

func TestText_Nil(t *testing.T) {
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "", BodyText(nil))
	assert.Nil(t, BulletTexts(nil))
}
