package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// PhraseEmbedding is one bilingual reference record in the pgvector-backed
// index. Metadata is stored open-ended as JSONB so loader records can carry
// fields the pipeline does not interpret.
type PhraseEmbedding struct {
	Id             string            `gorm:"type:text;primaryKey"`
	EmbeddingValue pgvector.Vector   `gorm:"type:vector(1536)"` // text-embedding-3-small uses 1536 dimensions
	Metadata       datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt      time.Time         `gorm:"autoCreateTime"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime"`
}

func (PhraseEmbedding) TableName() string {
	return "phrase_embeddings"
}
