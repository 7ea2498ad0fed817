package analyzer

import (
	"math"
	"reflect"
	"testing"
)

func TestKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "drops short words and case-folds",
			input:  "I am a Go developer with SQL skills",
			expect: []string{"developer", "with", "skills"},
		},
		{
			name:   "deduplicates preserving first occurrence",
			input:  "Kubernetes experience. Experience with Kubernetes operators.",
			expect: []string{"kubernetes", "experience", "with", "operators"},
		},
		{
			name:   "splits on punctuation",
			input:  "Python,Django;PostgreSQL",
			expect: []string{"python", "django", "postgresql"},
		},
		{
			name:   "empty input",
			input:  "",
			expect: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Keywords(tt.input); !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestAnalyzePartition(t *testing.T) {
	t.Parallel()

	jobDesc := "I am a Go developer with SQL skills"
	resume := "Experienced developer skilled in SQL and Go"

	cov := Analyze(jobDesc, resume)

	// "sql" is only three characters and never enters the keyword set.
	// "skills" must not match "skilled"; "with" is absent from the resume.
	if !reflect.DeepEqual(cov.Matched, []string{"developer"}) {
		t.Fatalf("unexpected matched: %v", cov.Matched)
	}
	if !reflect.DeepEqual(cov.Missing, []string{"with", "skills"}) {
		t.Fatalf("unexpected missing: %v", cov.Missing)
	}

	total := len(cov.Matched) + len(cov.Missing)
	if total != len(Keywords(jobDesc)) {
		t.Fatalf("matched and missing do not partition the keyword set")
	}

	if math.Abs(cov.Percent-100.0/3) > 1e-9 {
		t.Fatalf("expected one third coverage, got %v", cov.Percent)
	}
}

func TestAnalyzeResumeTokenizationIsWhitespaceOnly(t *testing.T) {
	t.Parallel()

	// Punctuation glued to resume words prevents exact-token matches.
	cov := Analyze("strong skills required", "skills, required.")

	if len(cov.Matched) != 0 {
		t.Fatalf("expected no matches, got %v", cov.Matched)
	}
	if !reflect.DeepEqual(cov.Missing, []string{"strong", "skills", "required"}) {
		t.Fatalf("unexpected missing: %v", cov.Missing)
	}
}

func TestAnalyzeEmptyJobDescription(t *testing.T) {
	t.Parallel()

	cov := Analyze("", "any resume text at all")

	if cov.Matched == nil || cov.Missing == nil {
		t.Fatalf("expected non-nil slices")
	}
	if len(cov.Matched) != 0 || len(cov.Missing) != 0 {
		t.Fatalf("expected empty partition, got %v / %v", cov.Matched, cov.Missing)
	}
	if cov.Percent != 0 {
		t.Fatalf("expected zero percent, got %v", cov.Percent)
	}
}
