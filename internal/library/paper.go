// Package library holds the read-only literature catalogue: the paper model,
// the corpus loader, free-text/ID search, and citation resolution.
package library

import (
	"encoding/json"
	"strings"
)

// UnknownTitle is returned whenever a paper ID cannot be resolved.
const UnknownTitle = "Unknown"

// Paper is a single literature record. Fields mirror the corpus JSON; most
// are optional and left empty when absent.
type Paper struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Authors     AuthorList `json:"authors,omitempty"`
	Year        int        `json:"year,omitempty"`
	Journal     string     `json:"journal,omitempty"`
	Publication string     `json:"publication,omitempty"`
	Volume      string     `json:"volume,omitempty"`
	Issue       string     `json:"issue,omitempty"`
	Pages       string     `json:"pages,omitempty"`
	DOI         string     `json:"doi,omitempty"`
	URL         string     `json:"url,omitempty"`
	Abstract    string     `json:"abstract,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Cites       []int      `json:"cites,omitempty"`
	CitedBy     []int      `json:"cited_by,omitempty"`
	AddedDate   string     `json:"added_date,omitempty"`
}

// AuthorList normalizes the corpus' "list or single string" author field into
// an ordered slice of names at decode time, so nothing downstream branches on
// shape.
type AuthorList []string

// UnmarshalJSON accepts either a JSON array of strings or a bare string.
func (a *AuthorList) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		*a = names
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*a = AuthorList{single}
	return nil
}

// Joined returns the authors concatenated with sep, e.g. for display or
// substring matching.
func (a AuthorList) Joined(sep string) string {
	return strings.Join(a, sep)
}
