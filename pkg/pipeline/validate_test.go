package pipeline

import (
	"testing"
)

func TestValidatorRun(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantQuery string
		wantKind  ErrorKind
	}{
		{
			name:      "plain query",
			body:      `{"user_query": "hello"}`,
			wantQuery: "hello",
		},
		{
			name:      "query is trimmed",
			body:      `{"user_query": "  hello  "}`,
			wantQuery: "hello",
		},
		{
			name:      "chinese query",
			body:      `{"user_query": "你好"}`,
			wantQuery: "你好",
		},
		{
			name:     "no body",
			body:     "",
			wantKind: KindMissingBody,
		},
		{
			name:     "body is not an object",
			body:     `"hello"`,
			wantKind: KindMissingBody,
		},
		{
			name:     "field not given",
			body:     `{"query": "hello"}`,
			wantKind: KindMissingField,
		},
		{
			name:     "field is not a string",
			body:     `{"user_query": 42}`,
			wantKind: KindWrongType,
		},
		{
			name:     "all whitespace",
			body:     `{"user_query": "   \t\n "}`,
			wantKind: KindEmptyQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &State{RawInput: []byte(tt.body)}
			err := NewValidator().Run(s)

			if tt.wantKind != "" {
				if err == nil {
					t.Fatalf("expected %s error, got success (query=%q)", tt.wantKind, s.Query)
				}
				if err.Kind != tt.wantKind {
					t.Errorf("Kind = %s, want %s", err.Kind, tt.wantKind)
				}
				if err.Stage != StageValidate {
					t.Errorf("Stage = %s, want %s", err.Stage, StageValidate)
				}
				if err.Status != 400 {
					t.Errorf("Status = %d, want 400", err.Status)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Query != tt.wantQuery {
				t.Errorf("Query = %q, want %q", s.Query, tt.wantQuery)
			}
		})
	}
}
