// Package analyzer computes keyword coverage of a resume against a job description.
package analyzer

import (
	"regexp"
	"strings"
)

// minKeywordLength filters out short filler words ("a", "the", "and").
// Only tokens strictly longer than this are treated as keywords.
const minKeywordLength = 3

var wordPattern = regexp.MustCompile(`\w+`)

// Coverage is the result of matching a job description's keyword set against
// resume text. Matched and Missing partition the keyword set exactly: every
// keyword appears in exactly one of them.
type Coverage struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Percent float64  `json:"percent"`
}

// Analyze extracts the keyword set from the job description and partitions it
// into keywords present in the resume text and keywords absent from it.
//
// The job description is tokenized as maximal runs of word characters, while
// the resume is split on whitespace only. The asymmetry means punctuation
// attached to resume words ("skills," vs "skills") prevents a match.
// Keywords keep the order of their first occurrence in the job description.
func Analyze(jobDescription, resumeText string) *Coverage {
	keywords := Keywords(jobDescription)

	resumeWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(resumeText)) {
		resumeWords[w] = struct{}{}
	}

	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if _, ok := resumeWords[kw]; ok {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	return &Coverage{
		Matched: matched,
		Missing: missing,
		Percent: percent(len(matched), len(keywords)),
	}
}

// Keywords returns the deduplicated lowercase tokens of the job description
// longer than three characters, in order of first occurrence.
func Keywords(jobDescription string) []string {
	tokens := wordPattern.FindAllString(strings.ToLower(jobDescription), -1)

	seen := make(map[string]struct{}, len(tokens))
	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= minKeywordLength {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}

	return keywords
}

func percent(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total) * 100
}
