package pipeline

import (
	"context"
	"fmt"
	"strings"

	"translator-ai-be/internal/constant"
	"translator-ai-be/pkg/llm"
)

// Synthesizer asks the generation model for a bilingual explanation grounded
// strictly in the formatted context block.
type Synthesizer struct {
	provider    llm.LLMProvider
	temperature float64
	maxTokens   int
}

func NewSynthesizer(provider llm.LLMProvider, temperature float64, maxTokens int) *Synthesizer {
	if temperature <= 0 {
		temperature = constant.DefaultGenerationTemperature
	}
	if maxTokens <= 0 {
		maxTokens = constant.DefaultGenerationMaxTokens
	}
	return &Synthesizer{
		provider:    provider,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (sy *Synthesizer) Run(ctx context.Context, s *State) *Error {
	userMsg := fmt.Sprintf("User Query:\n%s\n\nRetrieved Context (highest score first):\n%s",
		s.Query, s.ContextBlock)

	answer, err := sy.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: constant.TutorSystemPromptV1},
			{Role: "user", Content: userMsg},
		},
		llm.WithTemperature(sy.temperature),
		llm.WithMaxTokens(sy.maxTokens),
	)
	if err != nil {
		return NewError(StageSynthesize, KindUpstreamFailure,
			fmt.Sprintf("generation provider call failed: %v", err),
			"An error occurred while querying OpenAI")
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return NewError(StageSynthesize, KindEmptyUpstreamResult,
			"generation provider returned empty content",
			"OpenAI did not return a completion")
	}

	s.Answer = answer
	return nil
}
