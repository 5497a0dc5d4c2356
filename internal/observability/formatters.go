// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/docchat/internal/corpus"
	"github.com/jonathan/docchat/internal/intent"
	"github.com/jonathan/docchat/internal/rules"
	"github.com/jonathan/docchat/internal/search"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClassification outputs the classified intent and resolved action.
func (p *Printer) PrintClassification(label intent.Label, action rules.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Intent:    %s\n", label))
	if action.RequiresExternalCall {
		sb.WriteString(fmt.Sprintf("Operation: %s\n", action.Operation))
		if action.TargetPath != "" {
			sb.WriteString("Target:    explicit document reference\n")
		}
		for key, value := range action.Metadata {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", key, value))
		}
	} else {
		sb.WriteString("Operation: canned reply\n")
	}

	p.printBox("CLASSIFIED MESSAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidates outputs the ranked corpus candidates with scores.
func (p *Printer) PrintCandidates(candidates []corpus.Candidate) {
	if len(candidates) == 0 {
		p.printBox("RANKED CANDIDATES", "No documents found.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates: %d\n\n", len(candidates)))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, baseName(c.Path)))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", c.Score))
	}
	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(candidates)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutcome outputs a summary of the search outcome.
func (p *Printer) PrintOutcome(outcome *search.Outcome) {
	if outcome == nil {
		return
	}

	var sb strings.Builder
	if outcome.Found {
		sb.WriteString(fmt.Sprintf("Found in:  %s\n", outcome.SourceFile))
		sb.WriteString(fmt.Sprintf("Chunk:     %d of %d\n", outcome.ChunkIndex+1, outcome.ChunksInFile))
	} else {
		sb.WriteString("Found:     no\n")
	}
	sb.WriteString(fmt.Sprintf("Files:     %d of %d examined\n", outcome.FilesExamined, outcome.FilesTotal))
	sb.WriteString(fmt.Sprintf("Chunks:    %d examined\n", outcome.ChunksExamined))

	if len(outcome.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("\nErrors (%d):\n", len(outcome.Errors)))
		count := min(len(outcome.Errors), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", outcome.Errors[i]))
		}
		if len(outcome.Errors) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(outcome.Errors)-3))
		}
	}

	p.printBox("SEARCH OUTCOME", strings.TrimSuffix(sb.String(), "\n"))
}

func baseName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
