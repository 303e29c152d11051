package pipeline

import (
	"context"
	"errors"
	"testing"

	"translator-ai-be/pkg/vectorindex"

	"github.com/stretchr/testify/assert"
)

func TestRetrieverRejectsWrongDimensionBeforeQuerying(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{name: "nil vector", length: 0},
		{name: "too short", length: 768},
		{name: "too long", length: 3072},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := &stubIndex{}
			s := &State{Query: "hello", QueryVector: zeroVector(tt.length)}

			err := NewRetriever(index, 1536, 5).Run(context.Background(), s)

			if err == nil {
				t.Fatal("expected InvalidVector error")
			}
			assert.Equal(t, KindInvalidVector, err.Kind)
			assert.Equal(t, StageRetrieve, err.Stage)
			assert.Equal(t, 500, err.Status)
			// The index call must never be issued.
			assert.Equal(t, 0, index.calls)
		})
	}
}

func TestRetrieverMapsMatchesPreservingOrder(t *testing.T) {
	index := &stubIndex{
		matches: []vectorindex.Match{
			{ID: "r1", Score: score(0.9), Metadata: map[string]any{
				"lang":             "zh",
				"text":             "你好",
				"translation":      "hello",
				"pinyin":           "nǐ hǎo",
				"pair_id":          "p1",
				"context_examples": []any{"你好吗？", "你好，世界"},
				"hsk_level":        float64(1),
			}},
			{ID: "r2"},
		},
	}
	s := &State{Query: "hello", QueryVector: zeroVector(1536)}

	err := NewRetriever(index, 1536, 5).Run(context.Background(), s)

	assert.Nil(t, err)
	assert.Equal(t, 1, index.calls)
	assert.Equal(t, 5, index.lastReq.TopK)
	assert.True(t, index.lastReq.IncludeMetadata)

	assert.Len(t, s.Candidates, 2)
	assert.Equal(t, "r1", s.Candidates[0].ID)
	assert.Equal(t, "zh", s.Candidates[0].Metadata.Lang)
	assert.Equal(t, "你好", s.Candidates[0].Metadata.Text)
	assert.Equal(t, []string{"你好吗？", "你好，世界"}, s.Candidates[0].Metadata.ContextExamples)
	// Unknown metadata keys are preserved, not interpreted.
	assert.Equal(t, float64(1), s.Candidates[0].Metadata.Extra["hsk_level"])

	assert.Equal(t, "r2", s.Candidates[1].ID)
	assert.Nil(t, s.Candidates[1].Score)
}

func TestRetrieverEmptyResultIsSuccess(t *testing.T) {
	index := &stubIndex{matches: []vectorindex.Match{}}
	s := &State{Query: "hello", QueryVector: zeroVector(1536)}

	err := NewRetriever(index, 1536, 5).Run(context.Background(), s)

	assert.Nil(t, err)
	assert.NotNil(t, s.Candidates)
	assert.Len(t, s.Candidates, 0)
}

func TestRetrieverIndexFailure(t *testing.T) {
	index := &stubIndex{err: errors.New("connection refused")}
	s := &State{Query: "hello", QueryVector: zeroVector(1536)}

	err := NewRetriever(index, 1536, 5).Run(context.Background(), s)

	if err == nil {
		t.Fatal("expected error")
	}
	assert.Equal(t, KindUpstreamFailure, err.Kind)
	assert.Equal(t, "An error occurred while querying database", err.Public)
}
