package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"crlf", "line one\r\nline two", "line one\nline two"},
		{"collapses spaces", "too    many   spaces", "too many spaces"},
		{"keeps bullets", "  - Go\n  * Python", "- Go\n* Python"},
		{"collapses blank lines", "a\n\n\n\n\nb", "a\n\nb"},
		{"keeps headings", "   ## Requirements", "## Requirements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<div>Go developer</div>"))
	assert.True(t, LooksLikeHTML("<UL><LI>Docker</LI></UL>"))
	assert.False(t, LooksLikeHTML("Experience with C++ <3 years is fine"))
	assert.False(t, LooksLikeHTML("plain text"))
}

func TestExtractMainText(t *testing.T) {
	html := `<html><body>
<nav>Home | Jobs</nav>
<div class="job-description">
  <h2>Backend Engineer</h2>
  <ul><li>Kubernetes</li><li>Docker</li></ul>
</div>
<footer>Copyright</footer>
</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Kubernetes\nDocker")
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "Copyright")
}

func TestCleanJobDescription(t *testing.T) {
	assert.Equal(t, "", CleanJobDescription("   \n\t "))
	assert.Equal(t, "Go and AWS", CleanJobDescription("Go   and AWS  "))

	text := CleanJobDescription("<div><p>Need   Go</p><p>and AWS</p></div>")
	assert.Equal(t, "Need Go\nand AWS", text)
}

func TestIngestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Senior   Engineer\r\n\r\n\r\n\r\nGo"), 0644))

	text, err := IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer\n\nGo", text)

	_, err = IngestFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
