package bookmarks

import (
	"path/filepath"
	"testing"
)

func newMetaStore(t *testing.T) *MetadataStore {
	t.Helper()
	return NewMetadataStore(filepath.Join(t.TempDir(), "bookmarks_metadata.json"))
}

func TestGetReturnsDefaultsForUnknownID(t *testing.T) {
	t.Parallel()

	meta := newMetaStore(t)
	got := meta.Get(77)
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Fatalf("expected empty tag slice, got %#v", got.Tags)
	}
	if got.Comments != "" {
		t.Fatalf("expected empty comments, got %q", got.Comments)
	}
	if got.TagColors == nil || len(got.TagColors) != 0 {
		t.Fatalf("expected empty tag colors, got %#v", got.TagColors)
	}
}

func TestSetFullyReplacesEntry(t *testing.T) {
	t.Parallel()

	meta := newMetaStore(t)
	if err := meta.Set(1, Metadata{Tags: []string{"a", "b"}, Comments: "old", TagColors: map[string]string{"a": "#008000"}}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := meta.Set(1, Metadata{Tags: []string{"c"}, Comments: "new", TagColors: map[string]string{}}); err != nil {
		t.Fatalf("second Set: %v", err)
	}

	got := meta.Get(1)
	if len(got.Tags) != 1 || got.Tags[0] != "c" || got.Comments != "new" || len(got.TagColors) != 0 {
		t.Fatalf("Set merged instead of replacing: %+v", got)
	}
}

func TestAllTagsUnionsAndSorts(t *testing.T) {
	t.Parallel()

	meta := newMetaStore(t)
	if err := meta.Set(1, Metadata{Tags: []string{"ml", "nlp"}}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := meta.Set(2, Metadata{Tags: []string{"bio", "ml"}}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got := meta.AllTags()
	want := []string{"bio", "ml", "nlp"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRemoveMissingEntryDoesNotRewrite(t *testing.T) {
	t.Parallel()

	meta := newMetaStore(t)
	if err := meta.Remove(5); err != nil {
		t.Fatalf("Remove on empty store: %v", err)
	}
}

func TestPaletteRoundTrip(t *testing.T) {
	t.Parallel()

	meta := newMetaStore(t)
	if err := meta.Set(3, Metadata{
		Tags:      []string{"important", "odd"},
		TagColors: map[string]string{"important": "#FF0000", "odd": "#123456"},
	}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got := meta.Get(3)
	if name := ColorName(got.TagColors["important"]); name != "Red" {
		t.Fatalf("expected Red for #FF0000, got %q", name)
	}
	// Unknown hex falls back to Blue on the next render.
	if name := ColorName(got.TagColors["odd"]); name != "Blue" {
		t.Fatalf("expected Blue fallback, got %q", name)
	}
}

func TestColorLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	if name := ColorName("#ff0000"); name != "Red" {
		t.Fatalf("lowercase hex not matched: %q", name)
	}
	if hex := ColorHex("#ffa500"); hex != "#FFA500" {
		t.Fatalf("hex not canonicalized: %q", hex)
	}
}

func TestTagColorDefaultsToBlue(t *testing.T) {
	t.Parallel()

	md := Metadata{Tags: []string{"plain"}, TagColors: map[string]string{}}
	if got := TagColor(md, "plain"); got.Name != "Blue" {
		t.Fatalf("expected default Blue, got %+v", got)
	}

	md.TagColors["plain"] = "#008080"
	if got := TagColor(md, "plain"); got.Name != "Teal" {
		t.Fatalf("expected Teal, got %+v", got)
	}
}

func TestColorByName(t *testing.T) {
	t.Parallel()

	entry, ok := ColorByName("green")
	if !ok || entry.Hex != "#008000" {
		t.Fatalf("expected Green entry, got %+v (ok=%v)", entry, ok)
	}
	if _, ok := ColorByName("chartreuse"); ok {
		t.Fatalf("expected unknown color name to miss")
	}
}
