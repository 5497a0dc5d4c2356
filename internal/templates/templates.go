// Package templates renders canned replies and formats document operation
// results for the end user. Rendering is pure string work; the model is
// never used to phrase a response, and internal file paths are never shown.
package templates

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jonathan/docchat/internal/intent"
	"github.com/jonathan/docchat/internal/pdf"
	"github.com/jonathan/docchat/internal/rules"
)

// Canned reply sets keyed by intent label. Multi-entry sets are sampled
// per call so repeated greetings do not read identically.
var canned = map[intent.Label][]string{
	intent.Greeting: {
		"Hello! I'm your document assistant. I can search through all your PDF documents automatically. Just ask me any question!",
		"Hi there! I automatically search through all available PDF documents to answer your questions. What would you like to know?",
		"Greetings! Ask me any question and I'll search through my document database to find the answer for you.",
	},
	intent.Goodbye: {
		"Goodbye! Have a great day!",
		"See you later! Feel free to come back if you need help with documents.",
		"Farewell! Take care!",
	},
	intent.Help: {
		"I'm a chatbot that searches your PDF documents. Just ask me any question and I'll look through them to find the answer!",
	},
	intent.Unknown: {
		"I'm not sure I understand. Could you rephrase that?",
	},
}

const (
	emptyMessage      = "I didn't receive a message. Please type something!"
	noDocumentsReply  = "I couldn't find any documents to search. Please add some PDF files first."
	nothingFoundReply = "I searched through the available documents but couldn't find anything relevant to your question."
	notConfiguredNote = "\n\nNote: the model API is not configured. Please set GEMINI_API_KEY to use document operations."
)

// Formatter renders user-facing text for every engine outcome.
type Formatter struct {
	pick func(n int) int
}

// NewFormatter creates a formatter with randomized canned-reply selection.
func NewFormatter() *Formatter {
	return &Formatter{pick: rand.Intn}
}

// ForIntent returns a canned reply for a non-PDF intent. Unmapped labels
// fall back to the unknown reply.
func (f *Formatter) ForIntent(label intent.Label) string {
	replies, ok := canned[label]
	if !ok || len(replies) == 0 {
		replies = canned[intent.Unknown]
	}
	if len(replies) == 1 {
		return replies[0]
	}
	return replies[f.pick(len(replies))]
}

// Empty is the reply for a blank message.
func (f *Formatter) Empty() string {
	return emptyMessage
}

// NotConfigured is the degraded reply when model credentials are absent.
func (f *Formatter) NotConfigured() string {
	return f.ForIntent(intent.Unknown) + notConfiguredNote
}

// NoDocuments is the reply for an empty corpus.
func (f *Formatter) NoDocuments() string {
	return noDocumentsReply
}

// NothingFound is the reply for an exhausted search, distinct from a
// service error.
func (f *Formatter) NothingFound() string {
	return nothingFoundReply
}

// Result renders a successful operation: the model's answer text verbatim.
func (f *Formatter) Result(text string) string {
	return text
}

// OperationError renders a failed operation with a fixed error prefix. A
// document read failure names a corpus path the user may never have seen,
// so it is replaced with a generic message; the pathful error stays in the
// search outcome for logs and verbose output.
func (f *Formatter) OperationError(op rules.Operation, err error) string {
	var readErr *pdf.DocumentReadError
	if errors.As(err, &readErr) {
		return fmt.Sprintf("❌ Error performing %s operation: the document could not be read", op)
	}
	return fmt.Sprintf("❌ Error performing %s operation: %v", op, err)
}

// CannedReplies exposes the reply set for a label so tests can assert
// membership without duplicating the strings.
func CannedReplies(label intent.Label) []string {
	return canned[label]
}
