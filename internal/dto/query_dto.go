package dto

import "time"

// QueryRequest is documented for clients; the pipeline validator parses the
// raw body itself so it can tell a missing field from a wrong-typed one.
type QueryRequest struct {
	UserQuery string `json:"user_query"`
}

type QueryMatchDTO struct {
	Id          string   `json:"id"`
	Score       *float64 `json:"score,omitempty"`
	Lang        string   `json:"lang,omitempty"`
	Text        string   `json:"text,omitempty"`
	Translation string   `json:"translation,omitempty"`
}

type QueryResponse struct {
	Answer  string          `json:"answer"`
	Matches []QueryMatchDTO `json:"matches,omitempty"`
}

type RecentQueryResponse struct {
	Id         string    `json:"id"`
	Query      string    `json:"query"`
	Answer     string    `json:"answer"`
	MatchCount int       `json:"match_count"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}
