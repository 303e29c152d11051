package pipeline

// State is the shared request-scoped bag threaded through the stages. The
// orchestrator owns it; each stage reads only its declared inputs and writes
// only the fields it owns:
//
//	validator:   reads RawInput, writes Query
//	embedder:    reads Query, writes QueryVector
//	retriever:   reads QueryVector, writes Candidates
//	formatter:   reads Query+Candidates, writes ContextBlock+UsedCandidates
//	synthesizer: reads Query+ContextBlock, writes Answer
//
// A State lives for exactly one request and is never shared across requests.
type State struct {
	RawInput []byte

	Query       string
	QueryVector []float32
	Candidates  []RetrievedRecord

	ContextBlock   string
	UsedCandidates []RetrievedRecord

	Answer string
}

// RetrievedRecord is one vector-index match. Score is absent when the index
// did not report one; higher means more relevant.
type RetrievedRecord struct {
	ID       string
	Score    *float64
	Metadata RecordMetadata
}

// RecordMetadata carries the bilingual phrase payload stored alongside each
// vector. Unknown keys are preserved in Extra but never interpreted.
type RecordMetadata struct {
	Lang            string
	Text            string
	Translation     string
	Pinyin          string
	PairID          string
	ContextExamples []string
	Extra           map[string]any
}

// MetadataFromMap maps a raw index metadata payload onto RecordMetadata,
// keeping unrecognized fields in Extra.
func MetadataFromMap(raw map[string]any) RecordMetadata {
	md := RecordMetadata{}
	if raw == nil {
		return md
	}

	for key, value := range raw {
		switch key {
		case "lang":
			md.Lang = asString(value)
		case "text":
			md.Text = asString(value)
		case "translation":
			md.Translation = asString(value)
		case "pinyin":
			md.Pinyin = asString(value)
		case "pair_id":
			md.PairID = asString(value)
		case "context_examples":
			md.ContextExamples = asStringSlice(value)
		default:
			if md.Extra == nil {
				md.Extra = make(map[string]any)
			}
			md.Extra[key] = value
		}
	}
	return md
}

// ToMap renders the metadata back into the open map shape the index stores.
func (md RecordMetadata) ToMap() map[string]any {
	out := make(map[string]any, len(md.Extra)+6)
	for key, value := range md.Extra {
		out[key] = value
	}
	if md.Lang != "" {
		out["lang"] = md.Lang
	}
	if md.Text != "" {
		out["text"] = md.Text
	}
	if md.Translation != "" {
		out["translation"] = md.Translation
	}
	if md.Pinyin != "" {
		out["pinyin"] = md.Pinyin
	}
	if md.PairID != "" {
		out["pair_id"] = md.PairID
	}
	if len(md.ContextExamples) > 0 {
		examples := make([]any, len(md.ContextExamples))
		for i, ex := range md.ContextExamples {
			examples[i] = ex
		}
		out["context_examples"] = examples
	}
	return out
}

func asString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

func asStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
