package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hireloop/ats-analyzer/internal/prompts"

	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

func TestGatewayRun(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: "Strong match on Go experience."}
	gw := NewGateway(stub, zap.NewNop(), 0)

	req := prompts.Review{JobDescription: "go developer", ResumeText: "ten years of go"}

	got, err := gw.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != stub.response {
		t.Fatalf("expected %q, got %q", stub.response, got)
	}
	if !strings.Contains(stub.lastPrompt, "ten years of go") {
		t.Fatalf("expected rendered prompt to reach the generator, got: %s", stub.lastPrompt)
	}
}

func TestGatewayRunPropagatesGeneratorError(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{err: errors.New("quota exceeded")}
	gw := NewGateway(stub, zap.NewNop(), 0)

	_, err := gw.Run(context.Background(), prompts.Design{ResumeText: "cv"})
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected generator error, got %v", err)
	}
}

func TestGatewayInvokeUnknownModeSentinel(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: "never used"}
	gw := NewGateway(stub, zap.NewNop(), 0)

	got, err := gw.Invoke(context.Background(), "summarize", "jd", "resume", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != InvalidModeResponse {
		t.Fatalf("expected sentinel response, got %q", got)
	}
	if stub.calls != 0 {
		t.Fatalf("backend must not be called for an unknown mode")
	}
}

func TestGatewayInvokeTranslate(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: "Lebenslauf"}
	gw := NewGateway(stub, zap.NewNop(), 0)

	got, err := gw.Invoke(context.Background(), "translate", "", "my resume", "German")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Lebenslauf" {
		t.Fatalf("unexpected response: %q", got)
	}
	if !strings.Contains(stub.lastPrompt, "into German") {
		t.Fatalf("expected language substitution, got: %s", stub.lastPrompt)
	}

	if _, err := gw.Invoke(context.Background(), "translate", "", "my resume", ""); !errors.Is(err, prompts.ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage for missing language, got %v", err)
	}
}
