package gemini

import (
	"testing"

	"google.golang.org/genai"
)

func TestCollectText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		resp   *genai.GenerateContentResponse
		expect string
	}{
		{
			name:   "nil response",
			resp:   nil,
			expect: "",
		},
		{
			name:   "no candidates",
			resp:   &genai.GenerateContentResponse{},
			expect: "",
		},
		{
			name: "joins non-empty parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Parts: []*genai.Part{
								{Text: "first part"},
								{Text: "  "},
								{Text: "second part"},
							},
						},
					},
				},
			},
			expect: "first part\nsecond part",
		},
		{
			name: "skips nil candidates and parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					nil,
					{
						Content: &genai.Content{
							Parts: []*genai.Part{nil, {Text: " trimmed "}},
						},
					},
				},
			},
			expect: "trimmed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := collectText(tt.resp); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := NewGenerator(t.Context(), "  ", "", 0, nil); err == nil {
		t.Fatal("expected an error for a missing api key")
	}
}
