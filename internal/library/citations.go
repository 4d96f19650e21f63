package library

// CitationRef pairs a cited paper ID with its resolved title.
type CitationRef struct {
	ID    int
	Title string
}

// Citations holds both directions of a paper's resolved citation edges.
// The lists are directed and not guaranteed consistent with each other; the
// resolver only looks titles up, it never repairs the graph.
type Citations struct {
	Cites   []CitationRef
	CitedBy []CitationRef
}

// ResolveCitations maps each ID in the paper's cites/cited_by lists to a
// title, preserving input order and multiplicity. IDs absent from the corpus
// resolve to UnknownTitle; self-references resolve like any other edge.
func (s *Store) ResolveCitations(p Paper) Citations {
	return Citations{
		Cites:   s.resolveEdges(p.Cites),
		CitedBy: s.resolveEdges(p.CitedBy),
	}
}

func (s *Store) resolveEdges(ids []int) []CitationRef {
	if len(ids) == 0 {
		return nil
	}
	refs := make([]CitationRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, CitationRef{ID: id, Title: s.TitleByID(id)})
	}
	return refs
}
