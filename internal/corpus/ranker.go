package corpus

import (
	"path/filepath"
	"sort"
	"strings"
)

// Scoring weights for filename relevance
const (
	fullQueryWeight  = 100
	exactTokenWeight = 10
	substringWeight  = 5
)

// Candidate is a corpus file with its computed relevance score.
type Candidate struct {
	Path  string
	Score int
}

// Rank orders candidate paths by descending filename relevance to the
// query. The sort is stable, so files with equal scores keep their
// enumeration order.
func Rank(paths []string, query string) []string {
	candidates := RankCandidates(paths, query)
	ranked := make([]string, len(candidates))
	for i, c := range candidates {
		ranked[i] = c.Path
	}
	return ranked
}

// RankCandidates scores and orders candidates, exposing the scores for
// verbose output.
func RankCandidates(paths []string, query string) []Candidate {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	queryTokens := uniqueTokens(strings.Fields(queryLower))

	candidates := make([]Candidate, 0, len(paths))
	for _, path := range paths {
		candidates = append(candidates, Candidate{
			Path:  path,
			Score: scoreCandidate(path, queryLower, queryTokens),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// scoreCandidate computes the filename relevance score:
//   - full query appearing as a substring of the cleaned filename
//   - exact token overlap between query and filename tokens
//   - substring containment in either direction, per token pair
//
// Pairs that match exactly also match by containment, so exact overlaps are
// counted twice. That bias toward filenames sharing many substrings with
// the query is intentional and must not be "fixed".
func scoreCandidate(path, queryLower string, queryTokens []string) int {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	nameCore := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	nameTokens := uniqueTokens(strings.Fields(nameCore))

	score := 0
	if queryLower != "" && strings.Contains(nameCore, queryLower) {
		score += fullQueryWeight
	}

	for _, q := range queryTokens {
		for _, f := range nameTokens {
			if q == f {
				score += exactTokenWeight
			}
			if strings.Contains(f, q) || strings.Contains(q, f) {
				score += substringWeight
			}
		}
	}
	return score
}

// uniqueTokens deduplicates while preserving first-seen order.
func uniqueTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
