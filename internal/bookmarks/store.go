// Package bookmarks persists the user's saved papers and the tags, comments,
// and tag colors attached to them. Both stores are flat JSON files rewritten
// whole on every mutation, and every operation re-reads the persisted state
// before acting; nothing is cached in memory across calls.
package bookmarks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/csheth/litshelf/internal/library"
)

// Store manages the bookmarks file. Removing a bookmark also removes its
// metadata entry as a best-effort sequential follow-up; the two writes are
// not atomic, so a crash in between can leave an orphaned metadata entry.
// Accepted for a single-user tool.
type Store struct {
	path string
	meta *MetadataStore
}

type bookmarksFile struct {
	References []library.Paper `json:"references"`
}

// NewStore returns a bookmark store over the given file, cascading removals
// into the given metadata store. meta may be nil when metadata is unused.
func NewStore(path string, meta *MetadataStore) *Store {
	return &Store{path: path, meta: meta}
}

// List returns the current bookmarks in append order. A missing or malformed
// file yields an empty list.
func (s *Store) List() []library.Paper {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var wrapped bookmarksFile
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.References != nil {
		return wrapped.References
	}
	var bare []library.Paper
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare
	}
	return nil
}

// Add appends the paper iff no existing bookmark shares its ID and persists
// immediately. It reports whether an insertion occurred; re-adding an
// already-bookmarked paper is a no-op returning false.
func (s *Store) Add(paper library.Paper) (bool, error) {
	current := s.List()
	for _, b := range current {
		if b.ID == paper.ID {
			return false, nil
		}
	}
	current = append(current, paper)
	if err := s.save(current); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes any bookmark with the given ID (no-op if absent), persists,
// and then deletes the corresponding metadata entry.
func (s *Store) Remove(id int) error {
	current := s.List()
	kept := current[:0]
	for _, b := range current {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if err := s.save(kept); err != nil {
		return err
	}
	if s.meta != nil {
		if err := s.meta.Remove(id); err != nil {
			return fmt.Errorf("removing bookmark metadata: %w", err)
		}
	}
	return nil
}

// IsBookmarked reports whether a bookmark with the given ID exists.
func (s *Store) IsBookmarked(id int) bool {
	for _, b := range s.List() {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) save(papers []library.Paper) error {
	if papers == nil {
		papers = []library.Paper{}
	}
	data, err := json.MarshalIndent(bookmarksFile{References: papers}, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(s.path, data)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
