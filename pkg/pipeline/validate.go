package pipeline

import (
	"encoding/json"
	"strings"
)

// QueryField is the JSON key the boundary expects the user's query under.
const QueryField = "user_query"

// Validator asserts the raw payload carries a well-formed, non-empty query
// and normalizes it into State.Query. No side effects beyond state mutation.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Run(s *State) *Error {
	if len(s.RawInput) == 0 {
		return NewError(StageValidate, KindMissingBody,
			"there is no request body",
			"Add input to the request body")
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(s.RawInput, &body); err != nil {
		return NewError(StageValidate, KindMissingBody,
			"request body is not a JSON object: "+err.Error(),
			"Add input to the request body")
	}

	raw, ok := body[QueryField]
	if !ok {
		return NewError(StageValidate, KindMissingField,
			`key "`+QueryField+`" not given`,
			`key "`+QueryField+`" not given`)
	}

	var query string
	if err := json.Unmarshal(raw, &query); err != nil {
		return NewError(StageValidate, KindWrongType,
			`key "`+QueryField+`" is not a string`,
			`key "`+QueryField+`" is not a string`)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return NewError(StageValidate, KindEmptyQuery,
			"query is empty after trimming whitespace",
			"Query must not be empty")
	}

	s.Query = query
	return nil
}
