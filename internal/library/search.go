package library

import (
	"strconv"
	"strings"
)

// Search resolves a query against the corpus, preserving corpus order.
//
// A trimmed query that parses as an integer is an exact-ID lookup and
// short-circuits: it does not also match the digits as a title substring.
// Any other query is a case-insensitive substring match against the title or
// the authors joined by a single space; either match suffices.
//
// Callers gate empty queries; Search is never invoked for them.
func Search(query string, papers []Paper) []Paper {
	query = strings.TrimSpace(query)
	if id, err := strconv.Atoi(query); err == nil {
		var results []Paper
		for _, p := range papers {
			if p.ID == id {
				results = append(results, p)
			}
		}
		return results
	}

	needle := strings.ToLower(query)
	var results []Paper
	for _, p := range papers {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			results = append(results, p)
			continue
		}
		if strings.Contains(strings.ToLower(p.Authors.Joined(" ")), needle) {
			results = append(results, p)
		}
	}
	return results
}
