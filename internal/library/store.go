package library

import (
	"bytes"
	"encoding/json"
	"os"
)

// Store is the loaded, immutable corpus. A missing or malformed source file
// yields an empty store rather than an error: the tool keeps working with
// "no data found" states instead of crashing the session.
type Store struct {
	papers []Paper
}

type wrappedCorpus struct {
	References []Paper `json:"references"`
}

// Load reads the corpus file and assigns sequential 1-based IDs to any record
// missing one, in encountered order. Reloading an unchanged file yields
// identical IDs.
func Load(path string) *Store {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Store{}
	}
	return Parse(data)
}

// Parse decodes corpus bytes: either a bare array of papers or an object
// wrapping them under "references". Anything else decodes to an empty store.
func Parse(data []byte) *Store {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Store{}
	}
	var papers []Paper
	if err := json.Unmarshal(data, &papers); err != nil {
		var wrapped wrappedCorpus
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return &Store{}
		}
		papers = wrapped.References
	}
	for i := range papers {
		if papers[i].ID == 0 {
			papers[i].ID = i + 1
		}
	}
	return &Store{papers: papers}
}

// Papers returns the corpus in source order. Callers must not mutate it.
func (s *Store) Papers() []Paper {
	return s.papers
}

// Len reports the number of loaded papers.
func (s *Store) Len() int {
	return len(s.papers)
}

// ByID returns the paper with the given ID, if present.
func (s *Store) ByID(id int) (Paper, bool) {
	for _, p := range s.papers {
		if p.ID == id {
			return p, true
		}
	}
	return Paper{}, false
}

// TitleByID resolves a paper ID to its title, or UnknownTitle when no paper
// has that ID. It never fails: the citation graph may reference external or
// missing nodes.
func (s *Store) TitleByID(id int) string {
	if p, ok := s.ByID(id); ok {
		return p.Title
	}
	return UnknownTitle
}

// Append adds a paper to the corpus file, rewriting it whole. The file's
// shape is preserved: a bare-array corpus stays a bare array, everything else
// is written wrapped under "references". A missing or unreadable file starts
// a fresh wrapped corpus.
func Append(path string, p Paper) error {
	data, err := os.ReadFile(path)
	bareArray := false
	if err == nil {
		trimmed := bytes.TrimSpace(data)
		bareArray = len(trimmed) > 0 && trimmed[0] == '['
	}
	papers := Parse(data).papers
	papers = append(papers, p)

	var out []byte
	if bareArray {
		out, err = json.MarshalIndent(papers, "", "  ")
	} else {
		out, err = json.MarshalIndent(wrappedCorpus{References: papers}, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

// MaxID returns the largest assigned paper ID, or zero for an empty corpus.
func (s *Store) MaxID() int {
	max := 0
	for _, p := range s.papers {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}
