package pipeline

import (
	"fmt"
	"net/http"
)

// Stage identifies which pipeline stage produced a result or failure.
type Stage string

const (
	StageValidate   Stage = "validate"
	StageEmbed      Stage = "embed"
	StageRetrieve   Stage = "retrieve"
	StageFormat     Stage = "format"
	StageSynthesize Stage = "synthesize"
)

// ErrorKind classifies a pipeline failure. Every stage maps the errors it can
// recognize onto exactly one kind; nothing is swallowed silently.
type ErrorKind string

const (
	// Client input errors.
	KindMissingBody  ErrorKind = "MISSING_BODY"
	KindMissingField ErrorKind = "MISSING_FIELD"
	KindWrongType    ErrorKind = "WRONG_TYPE"
	KindEmptyQuery   ErrorKind = "EMPTY_QUERY"

	// Internal contract violation between embedder and retriever. A server
	// defect, not a client error.
	KindInvalidVector ErrorKind = "INVALID_VECTOR"

	// External provider errors.
	KindUpstreamFailure     ErrorKind = "UPSTREAM_FAILURE"
	KindEmptyUpstreamResult ErrorKind = "EMPTY_UPSTREAM_RESULT"

	// Legitimate "no relevant data" outcome, distinct from an upstream failure.
	KindNoCandidates ErrorKind = "NO_CANDIDATES"
)

// Error is the single structured failure a request can surface. Detail is for
// logs only; Public is the sanitized message the caller sees.
type Error struct {
	Stage  Stage
	Kind   ErrorKind
	Detail string
	Status int
	Public string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%s] %s", e.Stage, e.Kind, e.Detail)
}

// NewError builds a pipeline error with the status code configured for its kind.
func NewError(stage Stage, kind ErrorKind, detail, public string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   kind,
		Detail: detail,
		Status: statusFor(kind),
		Public: public,
	}
}

func statusFor(kind ErrorKind) int {
	switch kind {
	case KindMissingBody, KindMissingField, KindWrongType, KindEmptyQuery:
		return http.StatusBadRequest
	case KindNoCandidates:
		return http.StatusNotFound
	case KindEmptyUpstreamResult:
		return http.StatusBadGateway
	default:
		// KindInvalidVector, KindUpstreamFailure
		return http.StatusInternalServerError
	}
}
