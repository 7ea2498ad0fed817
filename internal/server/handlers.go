package server

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/hireloop/ats-analyzer/internal/analyzer"
	"github.com/hireloop/ats-analyzer/internal/prompts"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed static/index.html
var indexHTML []byte

type analyzeResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleAnalyze runs one of the model-backed analyses. Multipart fields:
// mode, job_desc, resume (PDF file), language (translate only).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	lg := s.logger.With(zap.String("request_id", requestID))

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	mode := strings.TrimSpace(r.FormValue("mode"))
	if mode == "" {
		writeError(w, http.StatusBadRequest, "mode is required")
		return
	}

	submission, ok := s.readSubmission(w, r, lg)
	if !ok {
		return
	}

	lg.Info("running analysis",
		zap.String("mode", mode),
		zap.Int("resume_length", len(submission.resumeText)),
		zap.Int("job_desc_length", len(submission.jobDescription)),
	)

	result, err := s.gateway.Invoke(r.Context(), mode, submission.jobDescription, submission.resumeText, r.FormValue("language"))
	switch {
	case err == nil:
	case errors.Is(err, prompts.ErrUnknownLanguage),
		errors.Is(err, prompts.ErrMissingLanguage),
		errors.Is(err, prompts.ErrEmptyResume):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	default:
		lg.Error("model invocation failed", zap.String("mode", mode), zap.Error(err))
		writeError(w, http.StatusBadGateway, "the analysis service failed to respond, please try again")
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Result: result})
}

// handleKeywords computes keyword coverage locally, without a model call.
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	lg := s.logger.With(zap.String("request_id", requestID))

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	submission, ok := s.readSubmission(w, r, lg)
	if !ok {
		return
	}

	coverage := analyzer.Analyze(submission.jobDescription, submission.resumeText)

	lg.Info("keyword coverage computed",
		zap.Int("matched", len(coverage.Matched)),
		zap.Int("missing", len(coverage.Missing)),
	)

	writeJSON(w, http.StatusOK, coverage)
}

type submission struct {
	jobDescription string
	resumeText     string
}

// readSubmission pulls the job description and the resume PDF out of the
// multipart form and extracts the resume text. It writes the error response
// itself and returns ok=false when the request cannot proceed.
func (s *Server) readSubmission(w http.ResponseWriter, r *http.Request, lg *zap.Logger) (submission, bool) {
	file, header, err := r.FormFile("resume")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "uploaded file is too large")
			return submission{}, false
		}
		writeError(w, http.StatusBadRequest, "a resume PDF upload is required")
		return submission{}, false
	}
	defer file.Close()

	if !isPDF(header) {
		writeError(w, http.StatusBadRequest, "only PDF uploads are accepted")
		return submission{}, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read the uploaded file")
		return submission{}, false
	}

	text, err := s.extractor.Text(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		lg.Warn("resume extraction failed", zap.String("filename", header.Filename), zap.Error(err))
		writeError(w, http.StatusUnprocessableEntity,
			"could not extract text from the PDF, is it scanned or image-based?")
		return submission{}, false
	}

	return submission{
		jobDescription: r.FormValue("job_desc"),
		resumeText:     text,
	}, true
}

func isPDF(header *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		return true
	}
	contentType := header.Header.Get("Content-Type")
	return strings.EqualFold(contentType, "application/pdf")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
