package bookmarks

import (
	"encoding/json"
	"os"
	"sort"
	"strconv"
)

// Metadata is the user-authored annotation attached to a bookmarked paper.
// TagColors maps tag names to palette hex codes; tags without an entry render
// with the default palette color.
type Metadata struct {
	Tags      []string          `json:"tags"`
	Comments  string            `json:"comments"`
	TagColors map[string]string `json:"tag_colors"`
}

// DefaultMetadata is the entry returned for IDs with nothing stored.
func DefaultMetadata() Metadata {
	return Metadata{Tags: []string{}, Comments: "", TagColors: map[string]string{}}
}

// MetadataStore manages the metadata file: a single JSON object keyed by the
// decimal paper ID, rewritten whole on every save.
type MetadataStore struct {
	path string
}

// NewMetadataStore returns a metadata store over the given file.
func NewMetadataStore(path string) *MetadataStore {
	return &MetadataStore{path: path}
}

// Get returns the stored metadata for a paper, or defaults when none exists.
// It never fails.
func (s *MetadataStore) Get(id int) Metadata {
	table := s.load()
	if md, ok := table[strconv.Itoa(id)]; ok {
		if md.Tags == nil {
			md.Tags = []string{}
		}
		if md.TagColors == nil {
			md.TagColors = map[string]string{}
		}
		return md
	}
	return DefaultMetadata()
}

// Set fully replaces the entry for the paper and persists the whole table.
func (s *MetadataStore) Set(id int, md Metadata) error {
	table := s.load()
	table[strconv.Itoa(id)] = md
	return s.save(table)
}

// Remove deletes the entry for the paper, if any, and persists.
func (s *MetadataStore) Remove(id int) error {
	table := s.load()
	key := strconv.Itoa(id)
	if _, ok := table[key]; !ok {
		return nil
	}
	delete(table, key)
	return s.save(table)
}

// AllTags returns the sorted union of tags across every stored entry, used to
// surface tag-name suggestions.
func (s *MetadataStore) AllTags() []string {
	seen := map[string]struct{}{}
	for _, md := range s.load() {
		for _, tag := range md.Tags {
			seen[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (s *MetadataStore) load() map[string]Metadata {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]Metadata{}
	}
	var table map[string]Metadata
	if err := json.Unmarshal(data, &table); err != nil || table == nil {
		return map[string]Metadata{}
	}
	return table
}

func (s *MetadataStore) save(table map[string]Metadata) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(s.path, data)
}
