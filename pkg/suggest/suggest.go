// Package suggest ranks candidate strings by similarity to a mistyped input,
// for "did you mean" error messages.
package suggest

import (
	"sort"
	"strings"
)

// threshold is the minimum similarity score for a candidate to be offered.
const threshold = 0.5

// FindSimilar returns up to maxResults candidates similar to target, best
// matches first, ties broken alphabetically.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}
	type scored struct {
		name  string
		score float64
	}
	matches := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			matches = append(matches, scored{name: name, score: score})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score == matches[j].score {
			return matches[i].name < matches[j].name
		}
		return matches[i].score > matches[j].score
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.name)
	}
	return result
}

func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1.0
	}
	// Typing a prefix of a candidate is a strong signal.
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	longest := max(len(a), len(b))
	return 1.0 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes the edit distance keeping only two rows of the matrix.
func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
