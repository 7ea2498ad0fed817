// Package extract pulls plain text out of uploaded resume PDFs.
package extract

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText indicates the document parsed successfully but contained no
// extractable text, typically a scanned or image-only PDF. Callers must treat
// it the same as a parse failure.
var ErrNoText = errors.New("no extractable text in document")

// Extractor reads resume PDFs into plain text.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Text extracts the document's text page by page in page order, joining pages
// with newlines and trimming surrounding whitespace. A document that yields
// only whitespace returns ErrNoText.
func (e *Extractor) Text(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(text)
	}

	return finalize(builder.String())
}

func finalize(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
