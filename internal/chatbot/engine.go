// Package chatbot wires intent classification, the rule engine and the
// document search pipeline into a single message-in/message-out engine.
package chatbot

import (
	"context"
	"errors"
	"strings"

	"github.com/jonathan/docchat/internal/intent"
	"github.com/jonathan/docchat/internal/rules"
	"github.com/jonathan/docchat/internal/search"
	"github.com/jonathan/docchat/internal/templates"
)

// DocumentService is the search pipeline surface the engine depends on.
type DocumentService interface {
	SearchCorpus(ctx context.Context, query, corpusDir string) (*search.Outcome, error)
	RunOperation(ctx context.Context, op rules.Operation, query, corpusDir, targetPath string) (string, error)
}

// Engine processes user messages one at a time. Each message is
// independent; the engine holds no per-conversation state, so one instance
// may serve concurrent requests.
type Engine struct {
	rules     *rules.Engine
	formatter *templates.Formatter
	service   DocumentService
	corpusDir string
	onOutcome func(*search.Outcome)
}

// Options configures an Engine.
type Options struct {
	CorpusDir  string
	UploadsDir string
	// Service is nil when model credentials are absent. The engine then
	// degrades PDF operations to a fixed "not configured" reply instead of
	// failing.
	Service DocumentService
	// OnOutcome, when set, receives the search outcome of every corpus
	// search, hit or miss, before the reply is formatted. Used by verbose
	// CLI output.
	OnOutcome func(*search.Outcome)
}

// NewEngine creates a chat engine.
func NewEngine(opts Options) *Engine {
	return &Engine{
		rules:     rules.NewEngine(opts.UploadsDir),
		formatter: templates.NewFormatter(),
		service:   opts.Service,
		corpusDir: opts.CorpusDir,
		onOutcome: opts.OnOutcome,
	}
}

// Process runs one message through the pipeline: classify, apply rules,
// optionally perform the document operation, format. It always returns a
// user-facing string; failures surface as rendered messages, never as a
// crash of the calling surface.
func (e *Engine) Process(ctx context.Context, message string) string {
	if strings.TrimSpace(message) == "" {
		return e.formatter.Empty()
	}

	label := intent.Classify(message)
	action := e.rules.Apply(label, message)

	if !action.RequiresExternalCall {
		return e.formatter.ForIntent(label)
	}
	if e.service == nil {
		return e.formatter.NotConfigured()
	}

	if action.Operation == rules.OpSearch {
		return e.runSearch(ctx, action, message)
	}
	return e.runOperation(ctx, action, message)
}

func (e *Engine) runSearch(ctx context.Context, action rules.Result, message string) string {
	outcome, err := e.service.SearchCorpus(ctx, message, e.corpusDir)
	if e.onOutcome != nil && outcome != nil {
		e.onOutcome(outcome)
	}
	switch {
	case err == nil && outcome.Found:
		return e.formatter.Result(outcome.ResultText)
	case err == nil:
		return e.formatter.NothingFound()
	case errors.Is(err, search.ErrNoCandidates):
		return e.formatter.NoDocuments()
	case errors.Is(err, search.ErrNoMatch):
		return e.formatter.NothingFound()
	default:
		return e.formatter.OperationError(action.Operation, err)
	}
}

func (e *Engine) runOperation(ctx context.Context, action rules.Result, message string) string {
	reply, err := e.service.RunOperation(ctx, action.Operation, message, e.corpusDir, action.TargetPath)
	switch {
	case err == nil:
		return e.formatter.Result(reply)
	case errors.Is(err, search.ErrNoCandidates):
		return e.formatter.NoDocuments()
	default:
		return e.formatter.OperationError(action.Operation, err)
	}
}
