package library

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bib.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing corpus: %v", err)
	}
	return path
}

func TestLoadAcceptsBareArray(t *testing.T) {
	t.Parallel()

	path := writeCorpus(t, `[{"id": 7, "title": "Alpha", "year": 2001}]`)
	store := Load(path)
	if store.Len() != 1 {
		t.Fatalf("expected one paper, got %d", store.Len())
	}
	if got := store.Papers()[0]; got.ID != 7 || got.Title != "Alpha" {
		t.Fatalf("unexpected paper: %+v", got)
	}
}

func TestLoadAcceptsReferencesWrapper(t *testing.T) {
	t.Parallel()

	path := writeCorpus(t, `{"references": [{"title": "Beta"}, {"title": "Gamma"}]}`)
	store := Load(path)
	if store.Len() != 2 {
		t.Fatalf("expected two papers, got %d", store.Len())
	}
}

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	t.Parallel()

	store := Load(filepath.Join(t.TempDir(), "absent.json"))
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d papers", store.Len())
	}
	if title := store.TitleByID(1); title != UnknownTitle {
		t.Fatalf("expected %q, got %q", UnknownTitle, title)
	}
}

func TestLoadMalformedFileYieldsEmptyStore(t *testing.T) {
	t.Parallel()

	store := Load(writeCorpus(t, `{"not": "a corpus"}`))
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d papers", store.Len())
	}
}

func TestLoadAssignsSequentialIDsDeterministically(t *testing.T) {
	t.Parallel()

	path := writeCorpus(t, `[{"title": "A"}, {"title": "B", "id": 10}, {"title": "C"}]`)

	first := Load(path)
	second := Load(path)

	wantIDs := []int{1, 10, 3}
	for i, want := range wantIDs {
		if got := first.Papers()[i].ID; got != want {
			t.Fatalf("paper %d: expected id %d, got %d", i, want, got)
		}
		if got := second.Papers()[i].ID; got != want {
			t.Fatalf("reload paper %d: expected id %d, got %d", i, want, got)
		}
	}
}

func TestAuthorsNormalizeFromStringOrList(t *testing.T) {
	t.Parallel()

	store := Parse([]byte(`[
		{"title": "Solo", "authors": "Jane Doe"},
		{"title": "Team", "authors": ["A. One", "B. Two"]}
	]`))
	papers := store.Papers()
	if len(papers) != 2 {
		t.Fatalf("expected two papers, got %d", len(papers))
	}
	if got := papers[0].Authors.Joined(", "); got != "Jane Doe" {
		t.Fatalf("string author not normalized: %q", got)
	}
	if got := papers[1].Authors.Joined(", "); got != "A. One, B. Two" {
		t.Fatalf("list authors mangled: %q", got)
	}
}

func TestTitleByIDFallsBackToUnknown(t *testing.T) {
	t.Parallel()

	store := Parse([]byte(`[{"id": 3, "title": "Known"}]`))
	if got := store.TitleByID(3); got != "Known" {
		t.Fatalf("expected Known, got %q", got)
	}
	if got := store.TitleByID(999); got != UnknownTitle {
		t.Fatalf("expected %q, got %q", UnknownTitle, got)
	}
}

func TestAppendPreservesBareArrayShape(t *testing.T) {
	t.Parallel()

	path := writeCorpus(t, `[{"id": 1, "title": "A"}]`)
	if err := Append(path, Paper{ID: 2, Title: "B"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading corpus: %v", err)
	}
	if data[0] != '[' {
		t.Fatalf("bare array rewritten as object: %s", data)
	}
	store := Load(path)
	if store.Len() != 2 || store.TitleByID(2) != "B" {
		t.Fatalf("appended paper missing: %+v", store.Papers())
	}
}

func TestAppendWrapsObjectCorpus(t *testing.T) {
	t.Parallel()

	path := writeCorpus(t, `{"references": [{"id": 1, "title": "A"}]}`)
	if err := Append(path, Paper{ID: 2, Title: "B"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading corpus: %v", err)
	}
	if data[0] != '{' {
		t.Fatalf("wrapped corpus rewritten as array: %s", data)
	}
	if store := Load(path); store.Len() != 2 {
		t.Fatalf("expected two papers, got %d", store.Len())
	}
}

func TestAppendStartsFreshCorpus(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.json")
	if err := Append(path, Paper{ID: 1, Title: "First"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if store := Load(path); store.TitleByID(1) != "First" {
		t.Fatalf("fresh corpus missing paper: %+v", store.Papers())
	}
}

func TestMaxID(t *testing.T) {
	t.Parallel()

	store := Parse([]byte(`[{"id": 4, "title": "A"}, {"id": 12, "title": "B"}]`))
	if got := store.MaxID(); got != 12 {
		t.Fatalf("expected max id 12, got %d", got)
	}
	if got := (&Store{}).MaxID(); got != 0 {
		t.Fatalf("expected zero max id for empty store, got %d", got)
	}
}
