package embedding

import "context"

// Result carries one embedding vector.
type Result struct {
	Values []float32
}

// Provider defines the interface for generating text embeddings.
type Provider interface {
	Generate(ctx context.Context, text string) (*Result, error)
}
