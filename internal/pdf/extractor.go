// Package pdf extracts per-page text from PDF files using MuPDF.
package pdf

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// DocumentReadError reports a PDF that could not be opened or decoded.
type DocumentReadError struct {
	Path  string
	Cause error
}

func (e *DocumentReadError) Error() string {
	return fmt.Sprintf("failed to read document %s: %v", e.Path, e.Cause)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Cause
}

// Extractor pulls text out of PDF files page by page.
type Extractor struct{}

// NewExtractor creates a PDF text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the document's full text with a "--- Page N ---"
// marker before each page, so model answers can cite page numbers. Any
// failure to open or decode the file is a DocumentReadError.
func (e *Extractor) ExtractText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", &DocumentReadError{Path: path, Cause: err}
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", &DocumentReadError{Path: path, Cause: fmt.Errorf("page %d: %w", i+1, err)}
		}
		pages = append(pages, fmt.Sprintf("--- Page %d ---\n%s\n", i+1, text))
	}

	return strings.Join(pages, "\n"), nil
}
