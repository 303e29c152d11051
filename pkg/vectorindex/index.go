package vectorindex

import "context"

// QueryRequest is a top-K nearest-neighbor search against the index.
type QueryRequest struct {
	Vector          []float32
	TopK            int
	IncludeMetadata bool
}

// Match is one ranked result. Score is nil when the index did not report one.
type Match struct {
	ID       string
	Score    *float64
	Metadata map[string]any
}

// Record is one upsertable vector with its metadata payload.
type Record struct {
	ID       string
	Values   []float32
	Metadata map[string]any
}

// Index is the contract every vector index backend implements. Query results
// come back in the index's own relevance order.
type Index interface {
	Query(ctx context.Context, req QueryRequest) ([]Match, error)
	Upsert(ctx context.Context, records []Record) error
}
