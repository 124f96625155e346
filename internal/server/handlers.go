package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/ingestion"
	"github.com/jonathan/ats-scorer/internal/resume"
	"github.com/jonathan/ats-scorer/internal/types"
)

// SimilarityRequest is the request body for /v1/similarity. ResumeText wins over Resume.
type SimilarityRequest struct {
	JobDescription string                `json:"job_description"`
	ResumeText     string                `json:"resume_text,omitempty"`
	Resume         *types.ResumeDocument `json:"resume,omitempty"`
}

// KeywordsRequest is the request body for /v1/keywords
type KeywordsRequest struct {
	Text string `json:"text"`
}

// ImprovementsRequest is the request body for /v1/improvements
type ImprovementsRequest struct {
	Resume         *types.ResumeDocument `json:"resume"`
	JobDescription string                `json:"job_description,omitempty"`
}

// ImprovementsResponse is the response for /v1/improvements
type ImprovementsResponse struct {
	Improvements []types.Improvement `json:"improvements"`
}

// handleScore scores a resume. An unsuccessful result is returned with status 422.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := s.decode(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	if req.Resume == nil {
		s.handleError(w, &ErrValidation{Field: "resume", Message: "is required"})
		return
	}
	req.JobDescription = ingestion.CleanJobDescription(req.JobDescription)

	result := s.engine.Score(r.Context(), &req)
	if !result.Success {
		s.logger.Warn("score request failed", zap.String("error", result.Error))
		s.jsonResponse(w, HTTPStatus(&ErrScoringFailed{Reason: result.Error}), result)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleSimilarity partitions job keywords into matching and missing
func (s *Server) handleSimilarity(w http.ResponseWriter, r *http.Request) {
	var req SimilarityRequest
	if err := s.decode(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	jobText := ingestion.CleanJobDescription(req.JobDescription)
	if jobText == "" {
		s.handleError(w, &ErrValidation{Field: "job_description", Message: "is required"})
		return
	}
	resumeText := req.ResumeText
	if strings.TrimSpace(resumeText) == "" {
		resumeText = resume.BodyText(req.Resume)
	}
	if strings.TrimSpace(resumeText) == "" {
		s.handleError(w, &ErrValidation{Field: "resume_text", Message: "resume_text or resume is required"})
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.CalculateSimilarity(jobText, resumeText))
}

// handleKeywords extracts categorized keywords from text or HTML
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req KeywordsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.ExtractKeywords(ingestion.CleanJobDescription(req.Text)))
}

// handleImprovements returns prioritized improvements for a resume
func (s *Server) handleImprovements(w http.ResponseWriter, r *http.Request) {
	var req ImprovementsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	if req.Resume == nil {
		s.handleError(w, &ErrValidation{Field: "resume", Message: "is required"})
		return
	}

	imps := s.engine.Improvements(req.Resume, ingestion.CleanJobDescription(req.JobDescription))
	if imps == nil {
		imps = []types.Improvement{}
	}
	s.jsonResponse(w, http.StatusOK, ImprovementsResponse{Improvements: imps})
}

// decode reads a bounded JSON body into dst
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &ErrBodyTooLarge{Limit: maxErr.Limit}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

func (s *Server) handleError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
