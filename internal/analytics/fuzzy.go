package analytics

import (
	"sort"
	"strings"
)

// Levenshtein computes the edit distance between two strings using the
// classic dynamic-programming table with unit substitution, insertion and
// deletion costs. Comparison is over runes, two rows at a time.
func Levenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	n, m := len(r1), len(r2)
	if n > m {
		r1, r2 = r2, r1
		n, m = m, n
	}

	currentRow := make([]int, n+1)
	for i := 0; i <= n; i++ {
		currentRow[i] = i
	}

	for i := 1; i <= m; i++ {
		previousRow := currentRow
		currentRow = make([]int, n+1)
		currentRow[0] = i
		for j := 1; j <= n; j++ {
			insert, del, change := previousRow[j]+1, currentRow[j-1]+1, previousRow[j-1]
			if r1[j-1] != r2[i-1] {
				change++
			}
			currentRow[j] = min(insert, min(del, change))
		}
	}
	return currentRow[n]
}

// FuzzyMatch pairs a candidate with its edit distance from the query.
type FuzzyMatch[T any] struct {
	Item     T
	Distance int
}

// FuzzySearch keeps candidates whose designated field is within threshold
// edit distance of the query, case-insensitively, sorted ascending by
// distance. The sort is stable: equal distances keep input order.
func FuzzySearch[T any](query string, candidates []T, field func(T) string, threshold int) []FuzzyMatch[T] {
	q := strings.ToLower(query)

	var matches []FuzzyMatch[T]
	for _, c := range candidates {
		d := Levenshtein(q, strings.ToLower(field(c)))
		if d <= threshold {
			matches = append(matches, FuzzyMatch[T]{Item: c, Distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	return matches
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
