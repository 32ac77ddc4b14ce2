// Package resolve matches user-typed method and command names against known
// names.
package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is a fuzzy match result with score.
type Match struct {
	Name  string
	Score int
}

var (
	ErrEmptyQuery = errors.New("empty search query")
	ErrEmptyNames = errors.New("no names to match against")
)

// AmbiguousError indicates multiple candidates matched equally well.
type AmbiguousError struct {
	Query   string
	Matches []Match
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "ambiguous match for %q", e.Query)
	if len(e.Matches) > 0 {
		b.WriteString(", candidates:")
		for _, m := range e.Matches {
			_, _ = fmt.Fprintf(&b, "\n  %s", m.Name)
		}
	}
	return b.String()
}

type lowerSource []string

func (s lowerSource) String(i int) string { return strings.ToLower(s[i]) }
func (s lowerSource) Len() int            { return len(s) }

// FuzzyMatch returns the single best name for query.
//
// An exact case-insensitive match wins outright. Otherwise the fuzzy
// ranking is used, and a tie between the top two results is reported as
// *AmbiguousError.
func FuzzyMatch(query string, names []string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}
	if len(names) == 0 {
		return "", ErrEmptyNames
	}

	for _, name := range names {
		if strings.EqualFold(name, query) {
			return name, nil
		}
	}

	results := fuzzy.FindFrom(strings.ToLower(query), lowerSource(names))
	if len(results) == 0 {
		return "", fmt.Errorf("no match found for %q", query)
	}
	if len(results) > 1 && results[0].Score == results[1].Score {
		return "", &AmbiguousError{
			Query:   query,
			Matches: buildMatches(names, results, 5),
		}
	}
	return names[results[0].Index], nil
}

// FuzzyMatchAll returns up to limit matches ranked by score (best first).
func FuzzyMatchAll(query string, names []string, limit int) []Match {
	query = strings.TrimSpace(query)
	if query == "" || len(names) == 0 || limit <= 0 {
		return nil
	}

	results := fuzzy.FindFrom(strings.ToLower(query), lowerSource(names))
	return buildMatches(names, results, limit)
}

// Suggest returns up to limit "did you mean" candidates for query. Fuzzy
// subsequence matches come first; when there are none, names within a
// small edit distance are offered instead, which catches typos.
func Suggest(query string, names []string, limit int) []string {
	var out []string
	for _, m := range FuzzyMatchAll(query, names, limit) {
		out = append(out, m.Name)
	}
	if len(out) > 0 {
		return out
	}
	if best := Closest(query, names); best != "" {
		return []string{best}
	}
	return nil
}

func buildMatches(names []string, results fuzzy.Matches, limit int) []Match {
	if len(results) == 0 || limit <= 0 {
		return nil
	}
	if len(results) > limit {
		results = results[:limit]
	}
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Name:  names[r.Index],
			Score: r.Score,
		}
	}
	return matches
}
