package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func score(v float64) *float64 {
	return &v
}

func TestFormatterNoCandidates(t *testing.T) {
	s := &State{Query: "hello", Candidates: []RetrievedRecord{}}
	err := NewFormatter().Run(s)

	if err == nil {
		t.Fatal("expected NoCandidates error, got success")
	}
	assert.Equal(t, KindNoCandidates, err.Kind)
	assert.Equal(t, StageFormat, err.Stage)
	assert.Equal(t, 404, err.Status)
}

func TestFormatterSortsByScoreDescending(t *testing.T) {
	// Submitted in ascending order on purpose.
	s := &State{
		Query: "hello",
		Candidates: []RetrievedRecord{
			{ID: "low", Score: score(0.8)},
			{ID: "high", Score: score(0.95)},
		},
	}

	err := NewFormatter().Run(s)
	assert.Nil(t, err)

	assert.Equal(t, "high", s.UsedCandidates[0].ID)
	assert.Equal(t, "low", s.UsedCandidates[1].ID)
}

func TestFormatterMissingScoreRanksLowest(t *testing.T) {
	s := &State{
		Query: "hello",
		Candidates: []RetrievedRecord{
			{ID: "unscored"},
			{ID: "scored", Score: score(0.1)},
		},
	}

	err := NewFormatter().Run(s)
	assert.Nil(t, err)

	assert.Equal(t, "scored", s.UsedCandidates[0].ID)
	assert.Equal(t, "unscored", s.UsedCandidates[1].ID)
	assert.Contains(t, s.ContextBlock, "score: -")
}

func TestFormatterStableOnTies(t *testing.T) {
	s := &State{
		Query: "hello",
		Candidates: []RetrievedRecord{
			{ID: "first", Score: score(0.5)},
			{ID: "second", Score: score(0.5)},
		},
	}

	err := NewFormatter().Run(s)
	assert.Nil(t, err)

	// Retrieval order is itself relevance-ordered, so ties keep it.
	assert.Equal(t, "first", s.UsedCandidates[0].ID)
	assert.Equal(t, "second", s.UsedCandidates[1].ID)
}

func TestFormatterRendersFixedFields(t *testing.T) {
	s := &State{
		Query: "hello",
		Candidates: []RetrievedRecord{
			{
				ID:    "r1",
				Score: score(0.9),
				Metadata: RecordMetadata{
					Lang:        "zh",
					Text:        "你好",
					Translation: "hello",
				},
			},
		},
	}

	err := NewFormatter().Run(s)
	assert.Nil(t, err)

	assert.Contains(t, s.ContextBlock, "id: r1")
	assert.Contains(t, s.ContextBlock, "score: 0.900")
	assert.Contains(t, s.ContextBlock, "lang: zh")
	assert.Contains(t, s.ContextBlock, "text: 你好")
	assert.Contains(t, s.ContextBlock, "translation: hello")
	assert.Contains(t, s.ContextBlock, "pinyin: -")
	assert.Contains(t, s.ContextBlock, "examples: -")
}

func TestFormatterCapsExamplesAtTwo(t *testing.T) {
	tests := []struct {
		name     string
		examples []string
		wantDash bool
		wantKept int
	}{
		{name: "no examples", examples: nil, wantDash: true},
		{name: "one example", examples: []string{"e1"}, wantKept: 1},
		{name: "two examples", examples: []string{"e1", "e2"}, wantKept: 2},
		{name: "five examples capped", examples: []string{"e1", "e2", "e3", "e4", "e5"}, wantKept: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &State{
				Query: "hello",
				Candidates: []RetrievedRecord{
					{ID: "r1", Score: score(0.9), Metadata: RecordMetadata{ContextExamples: tt.examples}},
				},
			}

			err := NewFormatter().Run(s)
			assert.Nil(t, err)

			if tt.wantDash {
				assert.Contains(t, s.ContextBlock, "examples: -")
				return
			}
			assert.Equal(t, tt.wantKept, strings.Count(s.ContextBlock, "\n- "))
			assert.NotContains(t, s.ContextBlock, "e3")
		})
	}
}

func TestFormatterDeterministicAndIdempotent(t *testing.T) {
	candidates := []RetrievedRecord{
		{ID: "a", Score: score(0.4), Metadata: RecordMetadata{Lang: "en", Text: "hi", ContextExamples: []string{"x", "y", "z"}}},
		{ID: "b", Score: score(0.9), Metadata: RecordMetadata{Lang: "zh", Text: "嗨"}},
		{ID: "c"},
	}

	run := func() *State {
		s := &State{Query: "hi"}
		s.Candidates = make([]RetrievedRecord, len(candidates))
		copy(s.Candidates, candidates)
		err := NewFormatter().Run(s)
		assert.Nil(t, err)
		return s
	}

	first := run()
	second := run()

	assert.Equal(t, first.ContextBlock, second.ContextBlock)
	assert.Equal(t, first.UsedCandidates, second.UsedCandidates)

	// Formatting never reorders the input slice the retriever wrote.
	assert.Equal(t, "a", first.Candidates[0].ID)
}
