// ABOUTME: Fuzzy filtering over list labels, a thin layer on sahilm/fuzzy
// ABOUTME: Filter returns item indexes best match first; an empty pattern keeps order

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against items, best first.
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Filter returns the indexes of items matching pattern, best first. An
// empty pattern returns every index in original order.
func Filter(pattern string, items []string) []int {
	if pattern == "" {
		out := make([]int, len(items))
		for i := range items {
			out[i] = i
		}
		return out
	}
	matches := fuzzy.Find(pattern, items)
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}
