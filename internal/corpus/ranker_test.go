package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_FullQuerySubstringScoresHighest(t *testing.T) {
	paths := []string{"docs/unrelated_report.pdf", "docs/nutrition_facts.pdf"}

	ranked := Rank(paths, "nutrition facts")
	require.Len(t, ranked, 2)
	assert.Equal(t, "docs/nutrition_facts.pdf", ranked[0])
}

func TestRank_TokenOverlapWins(t *testing.T) {
	paths := []string{"a/quarterly_budget.pdf", "a/vitamin_tables.pdf"}

	ranked := Rank(paths, "vitamin content per serving")
	assert.Equal(t, "a/vitamin_tables.pdf", ranked[0])
}

func TestRank_VitaminScenario(t *testing.T) {
	// Neither filename matches the query tokens, so both score zero and the
	// stable sort keeps enumeration order: nutrition_facts.pdf stays first.
	paths := []string{"nutrition_facts.pdf", "unrelated_report.pdf"}

	ranked := Rank(paths, "find the vitamin content")
	assert.Equal(t, "nutrition_facts.pdf", ranked[0])
}

func TestRank_StableOnTies(t *testing.T) {
	paths := []string{"zz.pdf", "qq.pdf", "xx.pdf"}

	ranked := Rank(paths, "completely different terms")
	assert.Equal(t, paths, ranked)
}

func TestRank_Deterministic(t *testing.T) {
	paths := []string{"report_2023.pdf", "report_2024.pdf", "summary.pdf"}

	first := Rank(paths, "2024 report")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Rank(paths, "2024 report"))
	}
}

func TestRankCandidates_Scores(t *testing.T) {
	candidates := RankCandidates([]string{"nutrition_facts.pdf"}, "nutrition facts")
	require.Len(t, candidates, 1)

	// Full query substring (+100), two exact tokens (+10 each) which also
	// count as containment pairs (+5 each).
	assert.Equal(t, 130, candidates[0].Score)
}

func TestRankCandidates_SubstringContainmentBothDirections(t *testing.T) {
	candidates := RankCandidates([]string{"nutrition.pdf"}, "nutritional values")
	require.Len(t, candidates, 1)

	// "nutrition" is a substring of "nutritional": containment only, no
	// exact overlap and no full-query match.
	assert.Equal(t, 5, candidates[0].Score)
}

func TestRank_EmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, "anything"))
}
