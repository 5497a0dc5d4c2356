// Package intent provides keyword and pattern based classification of user
// messages into a closed set of intent labels.
package intent

import (
	"regexp"
	"strings"
)

// Label identifies the purpose of a user message.
type Label string

// The closed set of intent labels. Messages that route to a PDF operation
// use the pdf_ prefix.
const (
	Greeting     Label = "greeting"
	Goodbye      Label = "goodbye"
	Help         Label = "help"
	PDFSearch    Label = "pdf_search"
	PDFExtract   Label = "pdf_extract"
	PDFSummarize Label = "pdf_summarize"
	PDFLookup    Label = "pdf_lookup"
	Unknown      Label = "unknown"
)

// Scoring weights for intent matching
const (
	keywordWeight = 2
	patternWeight = 5
)

// definition pairs a label with the keywords and patterns that vote for it.
type definition struct {
	label    Label
	keywords []string
	patterns []*regexp.Regexp
}

// definitions are evaluated in declaration order. On tied scores the earliest
// definition wins, so the effective priority is greeting > goodbye > help >
// pdf_search > pdf_extract > pdf_summarize > pdf_lookup > unknown.
var definitions = []definition{
	{
		label:    Greeting,
		keywords: []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(hello|hi|hey)[\s!.,]*$`),
			regexp.MustCompile(`good (morning|afternoon|evening)`),
		},
	},
	{
		label:    Goodbye,
		keywords: []string{"bye", "goodbye", "see you", "farewell", "exit"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(bye|goodbye|see you)[\s!.,]*$`),
		},
	},
	{
		label:    Help,
		keywords: []string{"help", "assist", "support", "what can you do"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`help`),
			regexp.MustCompile(`what can you do`),
			regexp.MustCompile(`how can you help`),
		},
	},
	{
		label: PDFSearch,
		keywords: []string{
			"search", "find", "where", "locate", "look for", "who", "what",
			"when", "why", "how", "checkup", "tell me", "true", "is", "are",
			"can", "does", "do",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`search`),
			regexp.MustCompile(`find`),
			regexp.MustCompile(`where`),
			regexp.MustCompile(`what.*is`),
			regexp.MustCompile(`who.*is`),
			regexp.MustCompile(`how.*does`),
			regexp.MustCompile(`tell me`),
		},
	},
	{
		label:    PDFExtract,
		keywords: []string{"extract", "pull out", "get the text", "copy the text"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`extract`),
		},
	},
	{
		label:    PDFSummarize,
		keywords: []string{"summarize", "summarise", "summary", "overview", "tldr"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`summar(y|ize|ise)`),
		},
	},
	{
		label:    PDFLookup,
		keywords: []string{"lookup", "look up", "fact check"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`look\s?up`),
		},
	},
	{
		label: Unknown,
	},
}

// questionWords trigger the search fallback for otherwise unclassified
// messages that look like questions.
var questionWords = []string{
	"?", "what", "who", "when", "where", "why", "how",
	"is", "are", "can", "does", "do",
}

// Classify scores the message against every intent definition and returns the
// best matching label. Keywords count as substring hits, patterns as regex
// matches. A message that scores zero everywhere but looks like a question
// falls back to PDFSearch, since unmatched questions are treated as document
// queries.
func Classify(message string) Label {
	msg := strings.ToLower(strings.TrimSpace(message))

	best := Unknown
	bestScore := 0
	for _, def := range definitions {
		score := 0
		for _, kw := range def.keywords {
			if strings.Contains(msg, kw) {
				score += keywordWeight
			}
		}
		for _, p := range def.patterns {
			if p.MatchString(msg) {
				score += patternWeight
			}
		}
		if score > bestScore {
			bestScore = score
			best = def.label
		}
	}

	if bestScore > 0 && best != Unknown {
		return best
	}

	if looksLikeQuestion(msg) {
		return PDFSearch
	}
	return Unknown
}

// IsPDFOperation reports whether the label routes to a document operation.
func (l Label) IsPDFOperation() bool {
	return strings.HasPrefix(string(l), "pdf_")
}

func looksLikeQuestion(msg string) bool {
	for _, w := range questionWords {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}
