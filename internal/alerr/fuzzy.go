package alerr

import (
	"fmt"
	"strings"
)

// editDistance is the Levenshtein distance between a and b, counted in runes.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return max(len(ra), len(rb))
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i, ca := range ra {
		diag := row[0]
		row[0] = i + 1
		for j, cb := range rb {
			above := row[j+1]
			cost := 1
			if ca == cb {
				cost = 0
			}
			row[j+1] = min(above+1, row[j]+1, diag+cost)
			diag = above
		}
	}
	return row[len(rb)]
}

// FindClosestMatch returns the option nearest to input, ignoring case.
// Options further than 3 edits, or further than half the input's length,
// never match, so one-letter answers only match one-letter typos.
func FindClosestMatch(input string, options []string) (string, bool) {
	input = strings.ToLower(input)
	limit := min(3, (len([]rune(input))+1)/2)

	best, bestDist := "", limit+1
	for _, opt := range options {
		if d := editDistance(input, strings.ToLower(opt)); d < bestDist {
			best, bestDist = opt, d
		}
	}
	return best, bestDist <= limit
}

// SuggestSimilar formats the closest option as a help line, or returns "".
func SuggestSimilar(input string, options []string) string {
	if match, ok := FindClosestMatch(input, options); ok {
		return fmt.Sprintf("did you mean '%s'?", match)
	}
	return ""
}
