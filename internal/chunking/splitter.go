// Package chunking splits extracted document text into bounded, overlapping
// windows that fit the model's context budget.
package chunking

import "unicode/utf8"

// Default window parameters, sized for a ~50k character model context cap.
const (
	DefaultMaxSize = 50000
	DefaultOverlap = 5000

	// boundaryBackscan limits how far a cut may move backward to land on a
	// sentence terminator instead of severing a sentence mid-way.
	boundaryBackscan = 2000
)

// Chunk is a bounded slice of a document's extracted text. It only exists
// within a single search call.
type Chunk struct {
	Text  string
	Index int
	Total int
}

// Splitter carves text into overlapping chunks.
type Splitter struct {
	maxSize int
	overlap int
}

// NewSplitter creates a splitter. Non-positive maxSize or a negative
// overlap falls back to the defaults; overlap is clamped below half of
// maxSize so every iteration makes progress.
func NewSplitter(maxSize, overlap int) *Splitter {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	if overlap >= maxSize/2 {
		overlap = maxSize / 10
	}
	return &Splitter{maxSize: maxSize, overlap: overlap}
}

// MaxSize returns the chunk window size in characters.
func (s *Splitter) MaxSize() int {
	return s.maxSize
}

// Split divides text into chunks of at most MaxSize characters, carrying
// the configured overlap into each following chunk. A window boundary that
// would fall mid-sentence is moved back to the last sentence terminator or
// newline within boundaryBackscan characters, unless that would shrink the
// chunk below half the window size. Cut points never sever a multi-byte
// rune, so every chunk of valid UTF-8 input is itself valid UTF-8. Text
// short enough for one window is returned as a single chunk, unmodified.
func (s *Splitter) Split(text string) []Chunk {
	if len(text) <= s.maxSize {
		return []Chunk{{Text: text, Index: 0, Total: 1}}
	}

	var parts []string
	start := 0
	for start < len(text) {
		end := start + s.maxSize
		if end >= len(text) {
			parts = append(parts, text[start:])
			break
		}
		end = snapToRuneStart(text, end)
		if end <= start {
			_, size := utf8.DecodeRuneInString(text[start:])
			end = start + size
		}
		cut := adjustCut(text, start, end, s.maxSize)
		parts = append(parts, text[start:cut])
		next := snapToRuneStart(text, cut-s.overlap)
		if next <= start {
			next = cut
		}
		start = next
	}

	chunks := make([]Chunk, len(parts))
	for i, part := range parts {
		chunks[i] = Chunk{Text: part, Index: i, Total: len(parts)}
	}
	return chunks
}

// adjustCut scans backward from the hard window end for a sentence
// terminator and cuts just after it. The hard cut is kept when no
// terminator is found within range or when the adjusted chunk would be
// smaller than half the window.
func adjustCut(text string, start, end, maxSize int) int {
	lowest := end - boundaryBackscan
	if lowest < start {
		lowest = start
	}
	for i := end - 1; i >= lowest; i-- {
		if text[i] == '.' || text[i] == '\n' {
			if cut := i + 1; cut-start >= maxSize/2 {
				return cut
			}
			break
		}
	}
	return end
}

// snapToRuneStart moves i backward to the nearest rune boundary. Sentence
// cuts land after an ASCII terminator and are already aligned; only hard
// window cuts and overlap starts can fall inside a multi-byte rune.
func snapToRuneStart(text string, i int) int {
	for i > 0 && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}
