package pgvector

import (
	"context"
	"fmt"

	"translator-ai-be/internal/model"
	"translator-ai-be/internal/repository/contract"
	"translator-ai-be/pkg/vectorindex"

	pgv "github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// Store adapts the phrase embedding repository to the vectorindex.Index
// contract, for deployments that keep vectors in Postgres instead of a
// hosted index.
type Store struct {
	repo contract.PhraseEmbeddingRepository
}

var _ vectorindex.Index = &Store{}

func NewStore(repo contract.PhraseEmbeddingRepository) *Store {
	return &Store{
		repo: repo,
	}
}

func (s *Store) Query(ctx context.Context, req vectorindex.QueryRequest) ([]vectorindex.Match, error) {
	scored, err := s.repo.SearchSimilarWithScore(ctx, req.Vector, req.TopK)
	if err != nil {
		return nil, fmt.Errorf("pgvector search failed: %w", err)
	}

	matches := make([]vectorindex.Match, len(scored))
	for i, res := range scored {
		score := res.Similarity
		matches[i] = vectorindex.Match{
			ID:    res.Embedding.Id,
			Score: &score,
		}
		if req.IncludeMetadata {
			matches[i].Metadata = map[string]any(res.Embedding.Metadata)
		}
	}
	return matches, nil
}

func (s *Store) Upsert(ctx context.Context, records []vectorindex.Record) error {
	models := make([]*model.PhraseEmbedding, len(records))
	for i, r := range records {
		models[i] = &model.PhraseEmbedding{
			Id:             r.ID,
			EmbeddingValue: pgv.NewVector(r.Values),
			Metadata:       datatypes.JSONMap(r.Metadata),
		}
	}
	return s.repo.UpsertBulk(ctx, models)
}
