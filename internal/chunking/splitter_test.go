package chunking

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_ShortTextIsSingleChunk(t *testing.T) {
	s := NewSplitter(100, 10)

	chunks := s.Split("short text")
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, 1, chunks[0].Total)
}

func TestSplit_ExactWindowIsSingleChunk(t *testing.T) {
	s := NewSplitter(10, 2)

	chunks := s.Split("0123456789")
	require.Len(t, chunks, 1)
	assert.Equal(t, "0123456789", chunks[0].Text)
}

func TestSplit_LongTextCoversEveryCharacter(t *testing.T) {
	s := NewSplitter(100, 10)
	text := strings.Repeat("abcdefghij", 100) // 1000 chars, no terminators

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)

	// With no sentence terminators every cut is a hard cut, so chunk i
	// starts at i*(window-overlap). Walking the chunks and marking covered
	// positions must account for every character of the original.
	covered := make([]bool, len(text))
	start := 0
	for i, c := range chunks {
		assert.Equal(t, text[start:start+len(c.Text)], c.Text)
		for j := start; j < start+len(c.Text); j++ {
			covered[j] = true
		}
		if i < len(chunks)-1 {
			start += len(c.Text) - 10
		}
	}
	for i, ok := range covered {
		require.True(t, ok, "character %d not covered by any chunk", i)
	}
}

func TestSplit_ChunkSizesRespectWindow(t *testing.T) {
	s := NewSplitter(100, 10)
	text := strings.Repeat("x", 950)

	for _, c := range s.Split(text) {
		assert.LessOrEqual(t, len(c.Text), 100)
		assert.GreaterOrEqual(t, len(c.Text), 1)
	}
}

func TestSplit_TotalsAreConsistent(t *testing.T) {
	s := NewSplitter(100, 10)
	text := strings.Repeat("y", 350)

	chunks := s.Split(text)
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, len(chunks), c.Total)
	}
}

func TestSplit_PrefersSentenceBoundary(t *testing.T) {
	s := NewSplitter(100, 10)
	// A terminator at position 79 sits within the backscan range and leaves
	// more than half a window of content, so the first cut lands after it.
	text := strings.Repeat("a", 79) + "." + strings.Repeat("b", 120)

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)
	assert.Equal(t, strings.Repeat("a", 79)+".", chunks[0].Text)
}

func TestSplit_KeepsHardCutWhenBoundaryTooEarly(t *testing.T) {
	s := NewSplitter(100, 10)
	// The only terminator leaves less than half a window, so the hard cut
	// at 100 characters is kept.
	text := strings.Repeat("a", 20) + "." + strings.Repeat("b", 200)

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)
	assert.Len(t, chunks[0].Text, 100)
}

func TestSplit_OverlapCarriedIntoNextChunk(t *testing.T) {
	s := NewSplitter(100, 10)
	text := strings.Repeat("z", 250)

	chunks := s.Split(text)
	require.GreaterOrEqual(t, len(chunks), 2)
	// The last 10 characters of a chunk reappear at the head of the next.
	tail := chunks[0].Text[len(chunks[0].Text)-10:]
	assert.True(t, strings.HasPrefix(chunks[1].Text, tail))
}

func TestSplit_NeverSeversMultiByteRunes(t *testing.T) {
	s := NewSplitter(101, 10)
	// Two-byte runes with an odd window size force every hard cut to land
	// mid-rune before snapping.
	text := strings.Repeat("é", 200)

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		assert.True(t, utf8.ValidString(c.Text), "chunk %d is not valid UTF-8", i)
	}
}

func TestSplit_MixedScriptTextStaysValid(t *testing.T) {
	s := NewSplitter(50, 5)
	text := strings.Repeat("résumé 日本語テキスト. ", 40)

	for i, c := range s.Split(text) {
		assert.True(t, utf8.ValidString(c.Text), "chunk %d is not valid UTF-8", i)
		assert.LessOrEqual(t, len(c.Text), 50)
	}
}

func TestNewSplitter_ClampsBadParameters(t *testing.T) {
	s := NewSplitter(0, -1)
	assert.Equal(t, DefaultMaxSize, s.MaxSize())

	// Overlap at or above half the window would stall the scan.
	s = NewSplitter(100, 90)
	chunks := s.Split(strings.Repeat("q", 500))
	assert.NotEmpty(t, chunks)
}
