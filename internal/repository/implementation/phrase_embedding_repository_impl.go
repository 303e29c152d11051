package implementation

import (
	"context"

	"translator-ai-be/internal/model"
	"translator-ai-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PhraseEmbeddingRepositoryImpl struct {
	db *gorm.DB
}

func NewPhraseEmbeddingRepository(db *gorm.DB) contract.PhraseEmbeddingRepository {
	return &PhraseEmbeddingRepositoryImpl{
		db: db,
	}
}

func (r *PhraseEmbeddingRepositoryImpl) UpsertBulk(ctx context.Context, embeddings []*model.PhraseEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(embeddings).Error
}

// SearchSimilarWithScore returns the top matches with similarity scores.
// Cosine distance in pgvector is 1 - cosine_similarity, so we compute
// 1 - (embedding_value <=> query_vector) = cosine_similarity.
func (r *PhraseEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredPhraseEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.PhraseEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("phrase_embeddings").
		Select("phrase_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredPhraseEmbedding, len(results))
	for i, res := range results {
		embedding := res.PhraseEmbedding
		scored[i] = &contract.ScoredPhraseEmbedding{
			Embedding:  &embedding,
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}

func (r *PhraseEmbeddingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PhraseEmbedding{}).Count(&count).Error
	return count, err
}
