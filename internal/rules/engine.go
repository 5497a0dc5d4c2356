// Package rules maps classified intents to action descriptors and extracts
// operation metadata from the message text.
package rules

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/docchat/internal/intent"
)

// Operation identifies a document task performed by the external model.
type Operation string

// Supported document operations
const (
	OpSearch    Operation = "search"
	OpExtract   Operation = "extract"
	OpSummarize Operation = "summarize"
	OpLookup    Operation = "lookup"
)

// Result describes what the dispatcher should do with a message. It is
// created once per message and consumed immediately.
type Result struct {
	RequiresExternalCall bool
	Operation            Operation
	// TargetPath is the resolved document path when the message names one.
	// Empty when no path was mentioned or resolution failed.
	TargetPath string
	Metadata   map[string]any
}

// intentOperations is the fixed intent to operation table.
var intentOperations = map[intent.Label]Operation{
	intent.PDFSearch:    OpSearch,
	intent.PDFExtract:   OpExtract,
	intent.PDFSummarize: OpSummarize,
	intent.PDFLookup:    OpLookup,
}

var (
	pageRe     = regexp.MustCompile(`page\s+(\d+)`)
	sectionRe  = regexp.MustCompile(`section\s+([\w-]+)`)
	pdfTokenRe = regexp.MustCompile(`(?i)[^\s"']+\.pdf\b`)
)

// Engine resolves intents into action descriptors.
type Engine struct {
	uploadsDir string
}

// NewEngine creates a rule engine. uploadsDir is where relative document
// references are resolved first; it may be empty.
func NewEngine(uploadsDir string) *Engine {
	return &Engine{uploadsDir: uploadsDir}
}

// Apply returns the action descriptor for a classified message. Non-PDF
// intents yield a zero Result with RequiresExternalCall false.
func (e *Engine) Apply(label intent.Label, message string) Result {
	op, ok := intentOperations[label]
	if !ok {
		return Result{}
	}

	res := Result{
		RequiresExternalCall: true,
		Operation:            op,
		Metadata:             map[string]any{},
	}

	lower := strings.ToLower(message)
	if m := pageRe.FindStringSubmatch(lower); m != nil {
		if page, err := strconv.Atoi(m[1]); err == nil {
			res.Metadata["page"] = page
		}
	}
	if m := sectionRe.FindStringSubmatch(lower); m != nil {
		res.Metadata["section"] = m[1]
	}
	if token := pdfTokenRe.FindString(message); token != "" {
		res.TargetPath = e.resolvePath(token)
	}

	return res
}

// resolvePath checks a mentioned *.pdf token against the filesystem.
// Absolute paths are checked directly; relative paths are checked under the
// uploads directory first, then the working directory. An unresolvable
// reference returns "" rather than an error.
func (e *Engine) resolvePath(token string) string {
	if filepath.IsAbs(token) {
		if fileExists(token) {
			return token
		}
		return ""
	}
	if e.uploadsDir != "" {
		candidate := filepath.Join(e.uploadsDir, token)
		if fileExists(candidate) {
			return candidate
		}
	}
	if fileExists(token) {
		return token
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
