package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://jobs.example.com/123"))
	assert.True(t, IsURL("http://localhost:8080/job"))
	assert.False(t, IsURL("jobs/backend.txt"))
	assert.False(t, IsURL("ftp://example.com/job"))
	assert.False(t, IsURL("https://"))
}

func TestIngestFromURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><nav>Jobs Home</nav>
<div class="job-description"><p>Senior Go Engineer</p><ul><li>Kubernetes</li></ul></div>
</body></html>`))
	}))
	defer server.Close()

	text, err := IngestFromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Kubernetes")
	assert.NotContains(t, text, "Jobs Home")
}

func TestIngestFromURL_PlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Backend   engineer\r\nGo and Kafka"))
	}))
	defer server.Close()

	text, err := IngestFromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer\nGo and Kafka", text)
}

func TestIngestFromURL_Errors(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("   "))
	}))
	defer empty.Close()

	tests := []struct {
		name    string
		url     string
		message string
	}{
		{"invalid URL", "not-a-valid-url", "invalid URL"},
		{"HTTP error", notFound.URL, "404"},
		{"empty page", empty.URL, "no text content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IngestFromURL(context.Background(), tt.url, nil)
			require.Error(t, err)

			var fetchErr *FetchError
			assert.ErrorAs(t, err, &fetchErr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestIngestFromURL_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Go engineer"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := IngestFromURL(ctx, server.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
