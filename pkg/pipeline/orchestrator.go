package pipeline

import (
	"context"

	"translator-ai-be/internal/pkg/logger"
)

// Status is the orchestrator's position in the stage chain. Failed and
// StatusSynthesized are terminal.
type Status string

const (
	StatusStart       Status = "START"
	StatusValidated   Status = "VALIDATED"
	StatusEmbedded    Status = "EMBEDDED"
	StatusRetrieved   Status = "RETRIEVED"
	StatusFormatted   Status = "FORMATTED"
	StatusSynthesized Status = "SYNTHESIZED"
	StatusFailed      Status = "FAILED"
)

// Result is what a successful run exposes to the boundary.
type Result struct {
	Query          string
	Answer         string
	UsedCandidates []RetrievedRecord
}

// Orchestrator wires the five stages over one fresh State per request,
// fail-fast: the first stage error wins and no later stage runs. The three
// external-call stages go through a shared concurrency limiter so a burst of
// requests cannot fan out unbounded calls to the providers.
type Orchestrator struct {
	validator   *Validator
	embedder    *Embedder
	retriever   *Retriever
	formatter   *Formatter
	synthesizer *Synthesizer
	limiter     *limiter
	log         logger.ILogger
}

func NewOrchestrator(
	embedder *Embedder,
	retriever *Retriever,
	synthesizer *Synthesizer,
	maxConcurrentUpstreamCalls int,
	log logger.ILogger,
) *Orchestrator {
	return &Orchestrator{
		validator:   NewValidator(),
		embedder:    embedder,
		retriever:   retriever,
		formatter:   NewFormatter(),
		synthesizer: synthesizer,
		limiter:     newLimiter(maxConcurrentUpstreamCalls),
		log:         log,
	}
}

// Execute runs the pipeline over rawBody. Exactly one of (*Result, *Error)
// is non-nil.
func (o *Orchestrator) Execute(ctx context.Context, rawBody []byte) (*Result, *Error) {
	state := &State{RawInput: rawBody}
	status := StatusStart

	if err := o.validator.Run(state); err != nil {
		return nil, o.fail(status, err)
	}
	status = StatusValidated

	if err := o.runLimited(ctx, state, status, o.embedder.Run); err != nil {
		return nil, o.fail(status, err)
	}
	status = StatusEmbedded

	if err := o.runLimited(ctx, state, status, o.retriever.Run); err != nil {
		return nil, o.fail(status, err)
	}
	status = StatusRetrieved

	if err := o.formatter.Run(state); err != nil {
		return nil, o.fail(status, err)
	}
	status = StatusFormatted

	if err := o.runLimited(ctx, state, status, o.synthesizer.Run); err != nil {
		return nil, o.fail(status, err)
	}
	status = StatusSynthesized

	o.log.Debug("pipeline", "query answered", map[string]interface{}{
		"status":     string(status),
		"candidates": len(state.UsedCandidates),
	})

	return &Result{
		Query:          state.Query,
		Answer:         state.Answer,
		UsedCandidates: state.UsedCandidates,
	}, nil
}

func (o *Orchestrator) runLimited(ctx context.Context, s *State, from Status, run func(context.Context, *State) *Error) *Error {
	stage := StageEmbed
	switch from {
	case StatusEmbedded:
		stage = StageRetrieve
	case StatusFormatted:
		stage = StageSynthesize
	}

	if err := o.limiter.acquire(ctx); err != nil {
		return NewError(stage, KindUpstreamFailure,
			"request canceled while waiting for an upstream slot: "+err.Error(),
			"An error occurred while processing the request")
	}
	defer o.limiter.release()

	return run(ctx, s)
}

func (o *Orchestrator) fail(from Status, err *Error) *Error {
	o.log.Error("pipeline", "stage failed", map[string]interface{}{
		"from_status": string(from),
		"stage":       string(err.Stage),
		"kind":        string(err.Kind),
		"detail":      err.Detail,
	})
	return err
}

// limiter is a counting semaphore over the upstream calls. Acquisition
// respects context cancellation, so a disconnected caller stops waiting.
type limiter struct {
	slots chan struct{}
}

func newLimiter(size int) *limiter {
	if size <= 0 {
		size = 64
	}
	return &limiter{
		slots: make(chan struct{}, size),
	}
}

func (l *limiter) acquire(ctx context.Context) error {
	select {
	case l.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *limiter) release() {
	<-l.slots
}
