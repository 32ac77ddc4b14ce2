package resolve

import "strings"

// maxSuggestDistance is the largest edit distance still offered as a hint.
const maxSuggestDistance = 3

// Levenshtein computes the Levenshtein edit distance between two strings.
func Levenshtein(a, b string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Single row plus a prev value.
	row := make([]int, lb+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= la; i++ {
		prev := i - 1
		row[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			val := min(row[j]+1, row[j-1]+1, prev+cost)
			prev = row[j]
			row[j] = val
		}
	}
	return row[lb]
}

// Closest returns the name nearest to query by edit distance, or "" when
// nothing is within maxSuggestDistance. Leading dashes are ignored so flag
// names compare by their bare spelling.
func Closest(query string, names []string) string {
	stripped := strings.ToLower(strings.TrimLeft(query, "-"))
	if stripped == "" {
		return ""
	}
	bestDist := maxSuggestDistance + 1
	best := ""
	for _, name := range names {
		d := Levenshtein(stripped, strings.ToLower(strings.TrimLeft(name, "-")))
		if d < bestDist {
			bestDist = d
			best = name
		}
	}
	return best
}
