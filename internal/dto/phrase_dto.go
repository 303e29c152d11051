package dto

// PhraseDTO is one bilingual reference entry submitted for ingestion.
type PhraseDTO struct {
	Id              string   `json:"id,omitempty"`
	Lang            string   `json:"lang" validate:"required,oneof=en zh"`
	Text            string   `json:"text" validate:"required"`
	Translation     string   `json:"translation,omitempty"`
	Pinyin          string   `json:"pinyin,omitempty"`
	PairId          string   `json:"pair_id,omitempty"`
	ContextExamples []string `json:"context_examples,omitempty" validate:"max=8"`
}

type IngestPhrasesRequest struct {
	Phrases []PhraseDTO `json:"phrases" validate:"required,min=1,max=100,dive"`
}

type IngestPhrasesResponse struct {
	Accepted int `json:"accepted"`
}

// PublishEmbedPhraseMessage is the payload placed on the ingest topic. The
// consumer embeds Text and upserts the record into the vector index.
type PublishEmbedPhraseMessage struct {
	Phrases []PhraseDTO `json:"phrases"`
}
