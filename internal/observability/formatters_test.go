package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/docchat/internal/corpus"
	"github.com/jonathan/docchat/internal/intent"
	"github.com/jonathan/docchat/internal/rules"
	"github.com/jonathan/docchat/internal/search"
)

func TestPrintClassification_ExternalCall(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClassification(intent.PDFSearch, rules.Result{
		RequiresExternalCall: true,
		Operation:            rules.OpSearch,
	})

	out := buf.String()
	assert.Contains(t, out, "CLASSIFIED MESSAGE")
	assert.Contains(t, out, "pdf_search")
	assert.Contains(t, out, "search")
}

func TestPrintClassification_CannedReply(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClassification(intent.Greeting, rules.Result{})

	assert.Contains(t, buf.String(), "canned reply")
}

func TestPrintCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidates([]corpus.Candidate{
		{Path: "/docs/annual_report.pdf", Score: 115},
		{Path: "/docs/misc.pdf", Score: 0},
	})

	out := buf.String()
	assert.Contains(t, out, "RANKED CANDIDATES")
	assert.Contains(t, out, "annual_report.pdf")
	assert.Contains(t, out, "Score: 115")
	assert.NotContains(t, out, "/docs/", "paths should be shown as base names")
}

func TestPrintCandidates_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidates(nil)

	assert.Contains(t, buf.String(), "No documents found")
}

func TestPrintCandidates_Truncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	candidates := make([]corpus.Candidate, 8)
	for i := range candidates {
		candidates[i] = corpus.Candidate{Path: "doc.pdf"}
	}
	p.PrintCandidates(candidates)

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintOutcome_Found(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutcome(&search.Outcome{
		Found:          true,
		SourceFile:     "report.pdf",
		ChunkIndex:     1,
		ChunksInFile:   3,
		ChunksExamined: 5,
		FilesExamined:  2,
		FilesTotal:     4,
	})

	out := buf.String()
	assert.Contains(t, out, "SEARCH OUTCOME")
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "2 of 3")
	assert.Contains(t, out, "2 of 4 examined")
}

func TestPrintOutcome_WithErrors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutcome(&search.Outcome{
		Errors: []string{"a.pdf: unreadable", "b.pdf: unreadable", "c.pdf: unreadable", "d.pdf: unreadable"},
	})

	out := buf.String()
	assert.Contains(t, out, "Errors (4)")
	assert.Contains(t, out, "and 1 more")
}

func TestPrintOutcome_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutcome(nil)

	assert.Empty(t, buf.String())
}
