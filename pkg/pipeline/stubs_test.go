package pipeline

import (
	"context"
	"errors"

	"translator-ai-be/pkg/embedding"
	"translator-ai-be/pkg/llm"
	"translator-ai-be/pkg/vectorindex"
)

// Test doubles with call counters, so short-circuit behavior can be asserted.

type stubEmbedder struct {
	calls  int
	values []float32
	err    error
}

func (s *stubEmbedder) Generate(ctx context.Context, text string) (*embedding.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.Result{Values: s.values}, nil
}

type stubIndex struct {
	calls   int
	lastReq vectorindex.QueryRequest
	matches []vectorindex.Match
	err     error
}

func (s *stubIndex) Query(ctx context.Context, req vectorindex.QueryRequest) ([]vectorindex.Match, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.matches, nil
}

func (s *stubIndex) Upsert(ctx context.Context, records []vectorindex.Record) error {
	return errors.New("not implemented")
}

type stubLLM struct {
	calls      int
	lastOpts   llm.Options
	lastPrompt []llm.Message
	reply      string
	err        error
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	s.calls++
	s.lastPrompt = history
	for _, opt := range opts {
		opt(&s.lastOpts)
	}
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func zeroVector(n int) []float32 {
	return make([]float32, n)
}
