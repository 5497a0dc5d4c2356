package search

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/docchat/internal/corpus"
	"github.com/jonathan/docchat/internal/prompts"
	"github.com/jonathan/docchat/internal/rules"
)

// operationPromptKeys maps single-document operations to their prompt
// templates. Search is handled by SearchCorpus, not here.
var operationPromptKeys = map[rules.Operation]string{
	rules.OpExtract:   "extract",
	rules.OpSummarize: "summarize-focused",
	rules.OpLookup:    "lookup",
}

// RunOperation performs a single-document operation (extract, summarize or
// lookup) against targetPath, or against the best-ranked corpus candidate
// when no explicit path was given. Document content is capped at one chunk
// window, matching the model context budget used by the search loop.
func (s *Searcher) RunOperation(ctx context.Context, op rules.Operation, query, corpusDir, targetPath string) (string, error) {
	key, ok := operationPromptKeys[op]
	if !ok {
		outcome, err := s.SearchCorpus(ctx, query, corpusDir)
		if err != nil {
			return "", err
		}
		return outcome.ResultText, nil
	}
	if op == rules.OpSummarize && !hasSummaryFocus(query) {
		key = "summarize"
	}

	path := targetPath
	if path == "" {
		ranked := corpus.Rank(corpus.ListPDFs(corpusDir), query)
		if len(ranked) == 0 {
			return "", ErrNoCandidates
		}
		path = ranked[0]
	}

	text, err := s.extractor.ExtractText(path)
	if err != nil {
		return "", err
	}
	if len(text) > s.splitter.MaxSize() {
		text = text[:s.splitter.MaxSize()]
	}

	template := prompts.MustGet(promptFile, key)
	prompt := prompts.Format(template, map[string]string{
		"Query":   query,
		"Content": text,
	})

	return s.client.Generate(ctx, prompt)
}

var (
	documentTokenRe = regexp.MustCompile(`(?i)[^\s"']+\.pdf\b`)

	// summaryFillerWords are the words that make up a bare summarize request.
	// Anything beyond them is treated as a focus topic.
	summaryFillerWords = map[string]struct{}{
		"summarize": {}, "summarise": {}, "summary": {}, "overview": {},
		"tldr": {}, "give": {}, "me": {}, "a": {}, "an": {}, "the": {},
		"of": {}, "this": {}, "that": {}, "document": {}, "file": {},
		"pdf": {}, "please": {}, "can": {}, "you": {},
	}
)

// hasSummaryFocus reports whether a summarize request names a topic, e.g.
// "summarize the methodology in report.pdf". A bare request like "summarize
// report.pdf" gets the whole-document summary prompt instead.
func hasSummaryFocus(query string) bool {
	stripped := documentTokenRe.ReplaceAllString(strings.ToLower(query), "")
	for _, token := range strings.Fields(stripped) {
		token = strings.Trim(token, ".,!?\"'")
		if token == "" {
			continue
		}
		if _, filler := summaryFillerWords[token]; !filler {
			return true
		}
	}
	return false
}
