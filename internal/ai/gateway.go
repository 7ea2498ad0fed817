// Package ai dispatches rendered prompts to a text-generation backend.
package ai

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/hireloop/ats-analyzer/internal/logger"
	"github.com/hireloop/ats-analyzer/internal/prompts"

	"go.uber.org/zap"
)

// InvalidModeResponse is returned verbatim when the caller supplies a mode
// outside the closed set. The UI never produces such a mode, so this is a
// defensive sentinel rather than an error.
const InvalidModeResponse = "Invalid mode selected!"

const defaultMaxLogLength = 200

// Generator produces a full text completion for a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Gateway renders prompt requests and forwards them to the generator. One
// synchronous remote call per invocation; no streaming.
type Gateway struct {
	generator Generator
	logger    *zap.Logger
	maxLogLen int
}

func NewGateway(generator Generator, lg *zap.Logger, maxLogLength int) *Gateway {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if lg == nil {
		lg = zap.NewNop()
	}

	return &Gateway{
		generator: generator,
		logger:    lg,
		maxLogLen: maxLogLength,
	}
}

// Run renders the request and returns the model's full text response.
func (g *Gateway) Run(ctx context.Context, req prompts.Request) (string, error) {
	if g == nil || g.generator == nil {
		return "", errors.New("gateway is not initialized")
	}

	prompt, err := req.Render()
	if err != nil {
		return "", err
	}

	g.logger.Debug("generate content request",
		zap.String("mode", string(req.Mode())),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, g.maxLogLen)),
	)

	response, err := g.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	g.logger.Debug("generate content response",
		zap.String("mode", string(req.Mode())),
		zap.Int("response_length", utf8.RuneCountInString(response)),
		zap.String("response_preview", logger.TruncateForLog(response, g.maxLogLen)),
	)

	return response, nil
}

// Invoke builds and runs a request from raw string values, typically from an
// HTTP form. An unrecognized mode yields InvalidModeResponse without calling
// the backend.
func (g *Gateway) Invoke(ctx context.Context, mode, jobDescription, resumeText, language string) (string, error) {
	parsed, err := prompts.ParseMode(mode)
	if err != nil {
		g.logger.Warn("unrecognized mode", zap.String("mode", mode))
		return InvalidModeResponse, nil
	}

	var lang prompts.Language
	if parsed == prompts.ModeTranslate {
		lang, err = prompts.ParseLanguage(language)
		if err != nil {
			return "", err
		}
	}

	req, err := prompts.New(parsed, jobDescription, resumeText, lang)
	if err != nil {
		return "", err
	}

	return g.Run(ctx, req)
}
