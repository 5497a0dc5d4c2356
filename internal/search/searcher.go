// Package search implements the ranked, chunked, early-stopping search over
// a PDF corpus. Candidates are scanned strictly in rank order and chunks in
// document order; the first sufficient answer stops the scan. The search is
// greedy and cost-bounded on purpose: it returns the first good answer, not
// the globally best one, so the number of model calls stays proportional to
// how early the answer appears.
package search

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/docchat/internal/chunking"
	"github.com/jonathan/docchat/internal/corpus"
	"github.com/jonathan/docchat/internal/llm"
	"github.com/jonathan/docchat/internal/prompts"
)

// Sentinel errors distinguishing an empty corpus from an exhausted search.
var (
	ErrNoCandidates = errors.New("no documents available to search")
	ErrNoMatch      = errors.New("no relevant information found in any document")
)

const (
	// NotFoundSentinel is the fixed reply the model is instructed to emit
	// when a chunk contains nothing relevant to the query.
	NotFoundSentinel = "NO_RELEVANT_INFORMATION"

	// minAnswerLength guards against degenerate replies counting as hits.
	minAnswerLength = 20

	promptFile = "operations.json"
)

// Outcome aggregates the result of one corpus search.
type Outcome struct {
	Found          bool
	ResultText     string
	SourceFile     string
	ChunkIndex     int
	ChunksInFile   int
	ChunksExamined int
	FilesExamined  int
	FilesTotal     int
	Errors         []string
}

// TextExtractor supplies per-file text extraction.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// Searcher runs model-backed relevance search over a PDF corpus.
type Searcher struct {
	client    llm.Client
	extractor TextExtractor
	splitter  *chunking.Splitter
}

// NewSearcher creates a searcher from its collaborators.
func NewSearcher(client llm.Client, extractor TextExtractor, splitter *chunking.Splitter) *Searcher {
	if splitter == nil {
		splitter = chunking.NewSplitter(chunking.DefaultMaxSize, chunking.DefaultOverlap)
	}
	return &Searcher{client: client, extractor: extractor, splitter: splitter}
}

// SearchCorpus ranks the corpus by filename relevance and scans candidates
// one at a time. Per-file extraction failures and per-call model failures
// are recorded in the outcome and skipped, never fatal. Returns
// ErrNoCandidates for an empty corpus (no model call is made) and
// ErrNoMatch when every candidate is exhausted without a hit.
func (s *Searcher) SearchCorpus(ctx context.Context, query, corpusDir string) (*Outcome, error) {
	candidates := corpus.Rank(corpus.ListPDFs(corpusDir), query)

	outcome := &Outcome{FilesTotal: len(candidates)}
	if len(candidates) == 0 {
		outcome.Errors = append(outcome.Errors, ErrNoCandidates.Error())
		return outcome, ErrNoCandidates
	}

	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		outcome.FilesExamined++

		text, err := s.extractor.ExtractText(path)
		if err != nil {
			outcome.Errors = append(outcome.Errors, err.Error())
			continue
		}

		hit, err := s.scanChunks(ctx, query, path, s.splitter.Split(text), outcome)
		if err != nil {
			if ctx.Err() != nil {
				return outcome, ctx.Err()
			}
			// A model failure skips this candidate's remaining chunks and
			// moves on to the next one.
			outcome.Errors = append(outcome.Errors, err.Error())
			continue
		}
		if hit {
			return outcome, nil
		}
	}

	return outcome, ErrNoMatch
}

// scanChunks queries the model once per chunk, in order, and stops at the
// first hit. The hit is recorded directly on the outcome.
func (s *Searcher) scanChunks(ctx context.Context, query, path string, chunks []chunking.Chunk, outcome *Outcome) (bool, error) {
	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		outcome.ChunksExamined++

		reply, err := s.client.Generate(ctx, buildSearchPrompt(query, chunk))
		if err != nil {
			return false, err
		}

		answer := strings.TrimSpace(reply)
		if isHit(answer) {
			outcome.Found = true
			outcome.ResultText = answer
			outcome.SourceFile = filepath.Base(path)
			outcome.ChunkIndex = chunk.Index
			outcome.ChunksInFile = chunk.Total
			return true, nil
		}
	}
	return false, nil
}

// isHit accepts an answer that is not the not-found sentinel and is long
// enough to carry actual content.
func isHit(answer string) bool {
	if answer == "" || strings.Contains(answer, NotFoundSentinel) {
		return false
	}
	return len(answer) > minAnswerLength
}

func buildSearchPrompt(query string, chunk chunking.Chunk) string {
	template := prompts.MustGet(promptFile, "search-chunk")
	return prompts.Format(template, map[string]string{
		"Query":      query,
		"Content":    chunk.Text,
		"ChunkIndex": strconv.Itoa(chunk.Index + 1),
		"ChunkTotal": strconv.Itoa(chunk.Total),
		"Sentinel":   NotFoundSentinel,
	})
}
