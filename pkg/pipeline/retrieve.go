package pipeline

import (
	"context"
	"fmt"

	"translator-ai-be/pkg/vectorindex"
)

// Retriever runs the top-K similarity search. It re-checks the vector
// dimension itself so an embedder bug (InvalidVector) stays distinguishable
// from an index outage (UpstreamFailure).
type Retriever struct {
	index     vectorindex.Index
	dimension int
	topK      int
}

func NewRetriever(index vectorindex.Index, dimension, topK int) *Retriever {
	return &Retriever{
		index:     index,
		dimension: dimension,
		topK:      topK,
	}
}

func (r *Retriever) Run(ctx context.Context, s *State) *Error {
	if len(s.QueryVector) != r.dimension {
		return NewError(StageRetrieve, KindInvalidVector,
			fmt.Sprintf("query vector has %d floats, expected %d", len(s.QueryVector), r.dimension),
			fmt.Sprintf("embedded query missing or wrong dimension (%d required)", r.dimension))
	}

	matches, err := r.index.Query(ctx, vectorindex.QueryRequest{
		Vector:          s.QueryVector,
		TopK:            r.topK,
		IncludeMetadata: true,
	})
	if err != nil {
		return NewError(StageRetrieve, KindUpstreamFailure,
			fmt.Sprintf("vector index query failed: %v", err),
			"An error occurred while querying database")
	}

	// Preserve the index's reported order; an empty match set is a valid
	// success here, the formatter decides what to do with it.
	candidates := make([]RetrievedRecord, len(matches))
	for i, m := range matches {
		candidates[i] = RetrievedRecord{
			ID:       m.ID,
			Score:    m.Score,
			Metadata: MetadataFromMap(m.Metadata),
		}
	}

	s.Candidates = candidates
	return nil
}
