package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbedderWritesVector(t *testing.T) {
	provider := &stubEmbedder{values: zeroVector(1536)}
	s := &State{Query: "hello"}

	err := NewEmbedder(provider, 1536).Run(context.Background(), s)

	assert.Nil(t, err)
	assert.Len(t, s.QueryVector, 1536)
	assert.Equal(t, 1, provider.calls)
}

func TestEmbedderProviderFailure(t *testing.T) {
	provider := &stubEmbedder{err: errors.New("rate limited")}
	s := &State{Query: "hello"}

	err := NewEmbedder(provider, 1536).Run(context.Background(), s)

	if err == nil {
		t.Fatal("expected error")
	}
	assert.Equal(t, KindUpstreamFailure, err.Kind)
	assert.Equal(t, StageEmbed, err.Stage)
	assert.Equal(t, "An error occurred while creating embedding", err.Public)
	assert.Empty(t, s.QueryVector)
}

func TestEmbedderEmptyResult(t *testing.T) {
	provider := &stubEmbedder{values: nil}
	s := &State{Query: "hello"}

	err := NewEmbedder(provider, 1536).Run(context.Background(), s)

	if err == nil {
		t.Fatal("expected error")
	}
	assert.Equal(t, KindEmptyUpstreamResult, err.Kind)
	assert.Equal(t, 502, err.Status)
}

func TestEmbedderWrongDimensionIsNeverPadded(t *testing.T) {
	provider := &stubEmbedder{values: zeroVector(768)}
	s := &State{Query: "hello"}

	err := NewEmbedder(provider, 1536).Run(context.Background(), s)

	if err == nil {
		t.Fatal("expected error")
	}
	assert.Equal(t, KindUpstreamFailure, err.Kind)
	assert.Empty(t, s.QueryVector)
}
