package service

import (
	"context"
	"time"

	"translator-ai-be/internal/dto"
	"translator-ai-be/internal/pkg/logger"
	"translator-ai-be/internal/repository/memory"
	"translator-ai-be/pkg/events"
	pktNats "translator-ai-be/pkg/nats"
	"translator-ai-be/pkg/pipeline"

	"github.com/google/uuid"
)

// IQueryService defines the query-answering service interface
type IQueryService interface {
	Query(ctx context.Context, rawBody []byte) (*dto.QueryResponse, error)
	Recent(limit int) []*dto.RecentQueryResponse
}

type queryService struct {
	orchestrator *pipeline.Orchestrator
	queryLog     *memory.QueryLogRepository
	natsPub      *pktNats.Publisher
	sysLogger    logger.ILogger
}

func NewQueryService(
	orchestrator *pipeline.Orchestrator,
	queryLog *memory.QueryLogRepository,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) IQueryService {
	return &queryService{
		orchestrator: orchestrator,
		queryLog:     queryLog,
		natsPub:      natsPub,
		sysLogger:    sysLogger,
	}
}

func (qs *queryService) Query(ctx context.Context, rawBody []byte) (*dto.QueryResponse, error) {
	start := time.Now()

	result, pipelineErr := qs.orchestrator.Execute(ctx, rawBody)
	if pipelineErr != nil {
		qs.publish(ctx, events.QueryFailed(string(pipelineErr.Stage), string(pipelineErr.Kind)))
		return nil, pipelineErr
	}

	durationMs := time.Since(start).Milliseconds()

	matches := make([]dto.QueryMatchDTO, len(result.UsedCandidates))
	for i, c := range result.UsedCandidates {
		matches[i] = dto.QueryMatchDTO{
			Id:          c.ID,
			Score:       c.Score,
			Lang:        c.Metadata.Lang,
			Text:        c.Metadata.Text,
			Translation: c.Metadata.Translation,
		}
	}

	qs.queryLog.Save(&memory.QueryRecord{
		Id:         uuid.NewString(),
		Query:      result.Query,
		Answer:     result.Answer,
		MatchCount: len(matches),
		DurationMs: durationMs,
		CreatedAt:  time.Now(),
	})

	qs.publish(ctx, events.QueryAnswered(result.Query, len(matches), durationMs))

	return &dto.QueryResponse{
		Answer:  result.Answer,
		Matches: matches,
	}, nil
}

func (qs *queryService) Recent(limit int) []*dto.RecentQueryResponse {
	records := qs.queryLog.Recent(limit)
	out := make([]*dto.RecentQueryResponse, len(records))
	for i, rec := range records {
		out[i] = &dto.RecentQueryResponse{
			Id:         rec.Id,
			Query:      rec.Query,
			Answer:     rec.Answer,
			MatchCount: rec.MatchCount,
			DurationMs: rec.DurationMs,
			CreatedAt:  rec.CreatedAt,
		}
	}
	return out
}

// publish is best-effort: the audit bus being down must not fail a request.
func (qs *queryService) publish(ctx context.Context, event events.Event) {
	if qs.natsPub == nil {
		return
	}
	if err := qs.natsPub.Publish(ctx, event); err != nil {
		qs.sysLogger.Warn("query_service", "failed to publish event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}
