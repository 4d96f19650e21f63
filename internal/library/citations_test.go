package library

import "testing"

func TestResolveCitationsMapsIDsToTitles(t *testing.T) {
	t.Parallel()

	store := Parse([]byte(`[
		{"id": 1, "title": "Root", "cites": [2, 999, 2], "cited_by": [3]},
		{"id": 2, "title": "Leaf"},
		{"id": 3, "title": "Follower"}
	]`))
	paper, ok := store.ByID(1)
	if !ok {
		t.Fatalf("paper 1 missing")
	}

	got := store.ResolveCitations(paper)
	wantCites := []CitationRef{
		{ID: 2, Title: "Leaf"},
		{ID: 999, Title: UnknownTitle},
		{ID: 2, Title: "Leaf"},
	}
	if len(got.Cites) != len(wantCites) {
		t.Fatalf("expected %d cites, got %+v", len(wantCites), got.Cites)
	}
	for i, want := range wantCites {
		if got.Cites[i] != want {
			t.Fatalf("cite %d: expected %+v, got %+v", i, want, got.Cites[i])
		}
	}
	if len(got.CitedBy) != 1 || got.CitedBy[0] != (CitationRef{ID: 3, Title: "Follower"}) {
		t.Fatalf("unexpected cited_by: %+v", got.CitedBy)
	}
}

func TestResolveCitationsSelfReferenceRendersLiterally(t *testing.T) {
	t.Parallel()

	store := Parse([]byte(`[{"id": 1, "title": "Ouroboros", "cites": [1]}]`))
	paper, _ := store.ByID(1)

	got := store.ResolveCitations(paper)
	if len(got.Cites) != 1 || got.Cites[0] != (CitationRef{ID: 1, Title: "Ouroboros"}) {
		t.Fatalf("expected literal self-citation, got %+v", got.Cites)
	}
}

func TestResolveCitationsEmptyEdges(t *testing.T) {
	t.Parallel()

	store := Parse([]byte(`[{"id": 1, "title": "Lonely"}]`))
	paper, _ := store.ByID(1)

	got := store.ResolveCitations(paper)
	if got.Cites != nil || got.CitedBy != nil {
		t.Fatalf("expected nil edge lists, got %+v", got)
	}
}
