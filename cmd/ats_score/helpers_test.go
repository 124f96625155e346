package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/observability"
)

const (
	resumeFixture = "../../testdata/resumes/valid.json"
	jobFixture    = "../../testdata/jobs/backend.txt"
)

// getBinaryPath returns the path to the ats_score binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "ats_score"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/ats_score ./cmd/ats_score'", binaryPath)
	}

	return binaryPath
}

// useDefaults installs default process state and captures stdout for one test
func useDefaults(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	prevOut, prevCfg, prevLogger, prevMetrics := stdout, cfg, logger, metrics
	stdout = &out
	cfg = config.Default()
	logger = zap.NewNop()
	metrics = observability.NewMetrics()
	t.Cleanup(func() {
		stdout, cfg, logger, metrics = prevOut, prevCfg, prevLogger, prevMetrics
	})
	return &out
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
