package pipeline

import (
	"context"
	"fmt"

	"translator-ai-be/pkg/embedding"
)

// Embedder converts the validated query into a fixed-dimension vector via the
// injected provider. One attempt per request, no retry.
type Embedder struct {
	provider  embedding.Provider
	dimension int
}

func NewEmbedder(provider embedding.Provider, dimension int) *Embedder {
	return &Embedder{
		provider:  provider,
		dimension: dimension,
	}
}

func (e *Embedder) Run(ctx context.Context, s *State) *Error {
	res, err := e.provider.Generate(ctx, s.Query)
	if err != nil {
		return NewError(StageEmbed, KindUpstreamFailure,
			fmt.Sprintf("embedding provider call failed: %v", err),
			"An error occurred while creating embedding")
	}

	if res == nil || len(res.Values) == 0 {
		return NewError(StageEmbed, KindEmptyUpstreamResult,
			"embedding provider returned no vector payload",
			"OpenAI did not return an embedding")
	}

	// A wrong-length vector is never padded or truncated.
	if len(res.Values) != e.dimension {
		return NewError(StageEmbed, KindUpstreamFailure,
			fmt.Sprintf("embedding dimension %d != expected %d", len(res.Values), e.dimension),
			"An error occurred while creating embedding")
	}

	s.QueryVector = res.Values
	return nil
}
