// Package server exposes the analyzer over HTTP: an embedded single-page UI
// plus JSON endpoints for the analyses and keyword coverage.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultMaxUploadBytes = 10 << 20 // 10 MiB

// Config holds server configuration.
type Config struct {
	Address        string
	MaxUploadBytes int64
}

// TextExtractor turns an uploaded PDF into plain text.
type TextExtractor interface {
	Text(r io.ReaderAt, size int64) (string, error)
}

// Invoker runs one of the fixed analyses against the remote model.
type Invoker interface {
	Invoke(ctx context.Context, mode, jobDescription, resumeText, language string) (string, error)
}

// Server is the HTTP front end. It holds no session state: every request
// carries the job description and the resume file.
type Server struct {
	httpServer *http.Server
	extractor  TextExtractor
	gateway    Invoker
	logger     *zap.Logger
	maxUpload  int64
}

// New creates a server listening on the configured address.
func New(cfg Config, extractor TextExtractor, gateway Invoker, lg *zap.Logger) *Server {
	if lg == nil {
		lg = zap.NewNop()
	}

	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}

	s := &Server{
		extractor: extractor,
		gateway:   gateway,
		logger:    lg,
		maxUpload: maxUpload,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/keywords", s.handleKeywords)

	return mux
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until the context is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", zap.String("address", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
