package contract

import (
	"context"

	"translator-ai-be/internal/model"
)

// ScoredPhraseEmbedding pairs a stored record with its cosine similarity to
// the query vector (higher = more relevant).
type ScoredPhraseEmbedding struct {
	Embedding  *model.PhraseEmbedding
	Similarity float64
}

type PhraseEmbeddingRepository interface {
	UpsertBulk(ctx context.Context, embeddings []*model.PhraseEmbedding) error
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredPhraseEmbedding, error)
	Count(ctx context.Context) (int64, error)
}
