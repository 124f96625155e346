package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/engine"
	"github.com/jonathan/ats-scorer/internal/ingestion"
	"github.com/jonathan/ats-scorer/internal/resume"
	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
)

// stdout is where results go when no --out path is given
var stdout io.Writer = os.Stdout

// validateInput checks a JSON input file against a schema. A schema that cannot be
// found or loaded only produces a warning; a document that violates it is an error.
func validateInput(schemaFile, path string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaFile)
	if schemaPath == "" {
		logger.Debug("schema not found, skipping validation", zap.String("schema", schemaFile))
		return nil
	}
	err := schemas.ValidateJSON(schemaPath, path)
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("%s does not validate against schema: %w", path, err)
	}
	logger.Warn("could not validate input against schema", zap.String("path", path), zap.Error(err))
	return nil
}

func loadResumeFile(path string) (*types.ResumeDocument, error) {
	if err := validateInput(schemas.ResumeSchema, path); err != nil {
		return nil, err
	}
	doc, err := resume.LoadResume(path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func loadKeywordSetFile(path string) (*types.KeywordSet, error) {
	if err := validateInput(schemas.KeywordSetSchema, path); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}
	var kw types.KeywordSet
	if err := json.Unmarshal(content, &kw); err != nil {
		return nil, fmt.Errorf("failed to parse keywords file: %w", err)
	}
	return &kw, nil
}

// loadJobFile returns the cleaned text of a job description file or posting URL, or "" for an empty path
func loadJobFile(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	var (
		text string
		err  error
	)
	if ingestion.IsURL(path) {
		text, err = ingestion.IngestFromURL(ctx, path, nil)
	} else {
		text, err = ingestion.IngestFromFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to load job description: %w", err)
	}
	return text, nil
}

// writeJSON writes v to path, or to stdout when path is empty
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, err = fmt.Fprintln(stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("wrote output", zap.String("path", path))
	return nil
}

// buildEngine creates the engine from the loaded config, optionally forcing semantic
// adjustment on.
func buildEngine(ctx context.Context, withSemantic bool) (*engine.Engine, func() error, error) {
	c := *cfg
	if withSemantic {
		c.Semantic.Enabled = true
	}
	return engine.FromConfig(ctx, &c, logger, metrics)
}
