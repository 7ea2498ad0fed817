// Package prompts holds the fixed prompt templates sent to the model and the
// typed requests that fill them in.
package prompts

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

//go:embed prompts/*.md
var templateFS embed.FS

// Mode selects one of the fixed analysis prompts.
type Mode string

const (
	ModeReview    Mode = "review"
	ModeOptimize  Mode = "optimize"
	ModeScore     Mode = "score"
	ModeFit       Mode = "fit"
	ModeDesign    Mode = "design"
	ModeTranslate Mode = "translate"
)

var (
	ErrUnknownMode     = errors.New("unknown mode")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrEmptyResume     = errors.New("resume text is required")
	ErrMissingLanguage = errors.New("target language is required")
)

// templates maps each mode to its parsed template. Parsed once at package
// init; reused on every render.
var templates = map[Mode]*template.Template{
	ModeReview:    mustParse(ModeReview),
	ModeOptimize:  mustParse(ModeOptimize),
	ModeScore:     mustParse(ModeScore),
	ModeFit:       mustParse(ModeFit),
	ModeDesign:    mustParse(ModeDesign),
	ModeTranslate: mustParse(ModeTranslate),
}

func mustParse(mode Mode) *template.Template {
	name := string(mode) + ".md"
	return template.Must(template.ParseFS(templateFS, "prompts/"+name))
}

// Modes returns the closed set of supported modes.
func Modes() []Mode {
	return []Mode{ModeReview, ModeOptimize, ModeScore, ModeFit, ModeDesign, ModeTranslate}
}

// ParseMode validates a raw mode string against the closed mode set.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := templates[mode]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return mode, nil
}

// Language is a translation target for the translate mode.
type Language string

const (
	LanguageFrench   Language = "French"
	LanguageSpanish  Language = "Spanish"
	LanguageGerman   Language = "German"
	LanguageHindi    Language = "Hindi"
	LanguageJapanese Language = "Japanese"
	LanguageMarathi  Language = "Marathi"
)

// Languages returns the fixed set of translation targets.
func Languages() []Language {
	return []Language{
		LanguageFrench, LanguageSpanish, LanguageGerman,
		LanguageHindi, LanguageJapanese, LanguageMarathi,
	}
}

// ParseLanguage validates a raw language label against the fixed set.
func ParseLanguage(s string) (Language, error) {
	trimmed := strings.TrimSpace(s)
	for _, lang := range Languages() {
		if strings.EqualFold(trimmed, string(lang)) {
			return lang, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// Request is a filled-in prompt waiting to be rendered. Each mode has its own
// request type with statically known required fields.
type Request interface {
	Mode() Mode
	Render() (string, error)
}

// jobResume carries the two fields shared by the four modes that compare a
// resume against a job description.
type jobResume struct {
	JobDescription string
	ResumeText     string
}

func (p jobResume) render(mode Mode) (string, error) {
	if strings.TrimSpace(p.ResumeText) == "" {
		return "", ErrEmptyResume
	}
	return render(mode, p)
}

// Review asks for an HR manager's strengths/weaknesses review.
type Review jobResume

func (Review) Mode() Mode { return ModeReview }
func (r Review) Render() (string, error) { return jobResume(r).render(ModeReview) }

// Optimize asks for concrete resume improvements as bullet points.
type Optimize jobResume

func (Optimize) Mode() Mode { return ModeOptimize }
func (r Optimize) Render() (string, error) { return jobResume(r).render(ModeOptimize) }

// Score asks for an ATS-style 1-100 score with reasoning.
type Score jobResume

func (Score) Mode() Mode { return ModeScore }
func (r Score) Render() (string, error) { return jobResume(r).render(ModeScore) }

// Fit asks for an overall 0-100 job fit score with an explanation.
type Fit jobResume

func (Fit) Mode() Mode { return ModeFit }
func (r Fit) Render() (string, error) { return jobResume(r).render(ModeFit) }

// Design asks for template and formatting suggestions. It only needs the
// resume text.
type Design struct {
	ResumeText string
}

func (Design) Mode() Mode { return ModeDesign }

func (r Design) Render() (string, error) {
	if strings.TrimSpace(r.ResumeText) == "" {
		return "", ErrEmptyResume
	}
	return render(ModeDesign, r)
}

// Translate asks for the resume rewritten in the target language. Rendering
// without a valid language is rejected.
type Translate struct {
	ResumeText string
	Language   Language
}

func (Translate) Mode() Mode { return ModeTranslate }

func (r Translate) Render() (string, error) {
	if strings.TrimSpace(r.ResumeText) == "" {
		return "", ErrEmptyResume
	}
	if r.Language == "" {
		return "", ErrMissingLanguage
	}
	if _, err := ParseLanguage(string(r.Language)); err != nil {
		return "", err
	}
	return render(ModeTranslate, r)
}

// New builds the request for the given mode from the supplied values. The
// language is only consulted for the translate mode.
func New(mode Mode, jobDescription, resumeText string, language Language) (Request, error) {
	switch mode {
	case ModeReview:
		return Review{JobDescription: jobDescription, ResumeText: resumeText}, nil
	case ModeOptimize:
		return Optimize{JobDescription: jobDescription, ResumeText: resumeText}, nil
	case ModeScore:
		return Score{JobDescription: jobDescription, ResumeText: resumeText}, nil
	case ModeFit:
		return Fit{JobDescription: jobDescription, ResumeText: resumeText}, nil
	case ModeDesign:
		return Design{ResumeText: resumeText}, nil
	case ModeTranslate:
		return Translate{ResumeText: resumeText, Language: language}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func render(mode Mode, data any) (string, error) {
	tmpl, ok := templates[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	var builder strings.Builder
	if err := tmpl.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", mode, err)
	}

	return strings.TrimSpace(builder.String()), nil
}
