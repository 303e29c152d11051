package pipeline

import (
	"context"
	"errors"
	"testing"

	"translator-ai-be/internal/constant"
	"translator-ai-be/pkg/vectorindex"

	"github.com/stretchr/testify/assert"
)

func newTestOrchestrator(embed *stubEmbedder, index *stubIndex, generate *stubLLM) *Orchestrator {
	return NewOrchestrator(
		NewEmbedder(embed, 1536),
		NewRetriever(index, 1536, 5),
		NewSynthesizer(generate, 0.25, 600),
		4,
		nopLogger{},
	)
}

func TestOrchestratorHappyPath(t *testing.T) {
	embed := &stubEmbedder{values: zeroVector(1536)}
	index := &stubIndex{
		matches: []vectorindex.Match{
			{ID: "r1", Score: score(0.9), Metadata: map[string]any{
				"lang":        "zh",
				"text":        "你好",
				"translation": "hello",
			}},
		},
	}
	generate := &stubLLM{reply: "### Translation\n- **English → Chinese**: 你好"}

	result, err := newTestOrchestrator(embed, index, generate).
		Execute(context.Background(), []byte(`{"user_query": "  hello  "}`))

	assert.Nil(t, err)
	assert.Equal(t, "hello", result.Query)
	assert.Equal(t, "### Translation\n- **English → Chinese**: 你好", result.Answer)
	assert.Len(t, result.UsedCandidates, 1)
	assert.Equal(t, "r1", result.UsedCandidates[0].ID)

	assert.Equal(t, 1, embed.calls)
	assert.Equal(t, 1, index.calls)
	assert.Equal(t, 1, generate.calls)

	// The synthesizer got the fixed system directive plus the rendered block.
	assert.Equal(t, "system", generate.lastPrompt[0].Role)
	assert.Equal(t, constant.TutorSystemPromptV1, generate.lastPrompt[0].Content)
	assert.Contains(t, generate.lastPrompt[1].Content, "id: r1")
	assert.Contains(t, generate.lastPrompt[1].Content, "score: 0.900")
	assert.Contains(t, generate.lastPrompt[1].Content, "lang: zh")
	assert.Equal(t, 0.25, generate.lastOpts.Temperature)
	assert.Equal(t, 600, generate.lastOpts.MaxTokens)
}

func TestOrchestratorEmbedFailureShortCircuits(t *testing.T) {
	embed := &stubEmbedder{err: errors.New("boom")}
	index := &stubIndex{}
	generate := &stubLLM{reply: "unused"}

	result, err := newTestOrchestrator(embed, index, generate).
		Execute(context.Background(), []byte(`{"user_query": "hello"}`))

	assert.Nil(t, result)
	if err == nil {
		t.Fatal("expected error")
	}
	assert.Equal(t, StageEmbed, err.Stage)
	assert.Equal(t, KindUpstreamFailure, err.Kind)
	assert.Equal(t, 500, err.Status)
	assert.Equal(t, "An error occurred while creating embedding", err.Public)

	// Later stages never run.
	assert.Equal(t, 0, index.calls)
	assert.Equal(t, 0, generate.calls)
}

func TestOrchestratorNoCandidatesSkipsSynthesizer(t *testing.T) {
	embed := &stubEmbedder{values: zeroVector(1536)}
	index := &stubIndex{matches: []vectorindex.Match{}}
	generate := &stubLLM{reply: "unused"}

	result, err := newTestOrchestrator(embed, index, generate).
		Execute(context.Background(), []byte(`{"user_query": "hello"}`))

	assert.Nil(t, result)
	if err == nil {
		t.Fatal("expected error")
	}
	assert.Equal(t, KindNoCandidates, err.Kind)
	assert.Equal(t, 404, err.Status)
	assert.Equal(t, 0, generate.calls)
}

func TestOrchestratorValidationFailureMakesNoUpstreamCalls(t *testing.T) {
	embed := &stubEmbedder{values: zeroVector(1536)}
	index := &stubIndex{}
	generate := &stubLLM{}

	_, err := newTestOrchestrator(embed, index, generate).
		Execute(context.Background(), []byte(`{"user_query": 42}`))

	if err == nil {
		t.Fatal("expected error")
	}
	assert.Equal(t, KindWrongType, err.Kind)
	assert.Equal(t, 0, embed.calls)
	assert.Equal(t, 0, index.calls)
	assert.Equal(t, 0, generate.calls)
}

func TestOrchestratorEmptyAnswerIsFailure(t *testing.T) {
	embed := &stubEmbedder{values: zeroVector(1536)}
	index := &stubIndex{
		matches: []vectorindex.Match{{ID: "r1", Score: score(0.5)}},
	}
	generate := &stubLLM{reply: "   "}

	result, err := newTestOrchestrator(embed, index, generate).
		Execute(context.Background(), []byte(`{"user_query": "hello"}`))

	assert.Nil(t, result)
	if err == nil {
		t.Fatal("expected error")
	}
	assert.Equal(t, StageSynthesize, err.Stage)
	assert.Equal(t, KindEmptyUpstreamResult, err.Kind)
}

func TestOrchestratorStatePerRequest(t *testing.T) {
	embed := &stubEmbedder{values: zeroVector(1536)}
	index := &stubIndex{
		matches: []vectorindex.Match{{ID: "r1", Score: score(0.5)}},
	}
	generate := &stubLLM{reply: "answer"}
	o := newTestOrchestrator(embed, index, generate)

	first, err := o.Execute(context.Background(), []byte(`{"user_query": "one"}`))
	assert.Nil(t, err)
	second, err := o.Execute(context.Background(), []byte(`{"user_query": "two"}`))
	assert.Nil(t, err)

	assert.Equal(t, "one", first.Query)
	assert.Equal(t, "two", second.Query)
	assert.Equal(t, 2, embed.calls)
	assert.Equal(t, 2, index.calls)
}
