package events

import "time"

// Event defines the contract for all audit events the service publishes.
type Event interface {
	// EventType returns the unique code for this event (e.g., "QUERY_ANSWERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeQueryAnswered   = "QUERY_ANSWERED"
	TypeQueryFailed     = "QUERY_FAILED"
	TypePhrasesIngested = "PHRASES_INGESTED"
)

func QueryAnswered(query string, matchCount int, durationMs int64) Event {
	return BaseEvent{
		Type: TypeQueryAnswered,
		Data: map[string]interface{}{
			"query":       query,
			"match_count": matchCount,
			"duration_ms": durationMs,
		},
		OccurredAt: time.Now(),
	}
}

func QueryFailed(stage, kind string) Event {
	return BaseEvent{
		Type: TypeQueryFailed,
		Data: map[string]interface{}{
			"stage": stage,
			"kind":  kind,
		},
		OccurredAt: time.Now(),
	}
}

func PhrasesIngested(count int) Event {
	return BaseEvent{
		Type: TypePhrasesIngested,
		Data: map[string]interface{}{
			"count": count,
		},
		OccurredAt: time.Now(),
	}
}
