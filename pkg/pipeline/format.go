package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"translator-ai-be/internal/constant"
)

// Formatter re-ranks the retrieved candidates and renders the bounded context
// block for the synthesizer. Pure and deterministic: same candidates in, same
// bytes out.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Run(s *State) *Error {
	if len(s.Candidates) == 0 {
		return NewError(StageFormat, KindNoCandidates,
			"empty retrieval results, nothing to ground the answer on",
			"No vector matches to build a report")
	}

	// Sort by score descending; a missing score ranks lowest. The stable sort
	// keeps retrieval order on ties, which is itself relevance-ordered.
	selected := make([]RetrievedRecord, len(s.Candidates))
	copy(selected, s.Candidates)
	sort.SliceStable(selected, func(i, j int) bool {
		return scoreOf(selected[i]) > scoreOf(selected[j])
	})

	blocks := make([]string, len(selected))
	for i, record := range selected {
		blocks[i] = renderRecord(record)
	}

	s.ContextBlock = strings.Join(blocks, "\n\n")
	s.UsedCandidates = selected
	return nil
}

func scoreOf(r RetrievedRecord) float64 {
	if r.Score == nil {
		return 0
	}
	return *r.Score
}

// renderRecord compacts one hit into prompt-friendly text. At most the first
// two usage examples are kept so prompt size stays bounded regardless of how
// many a record carries.
func renderRecord(r RetrievedRecord) string {
	md := r.Metadata

	score := "-"
	if r.Score != nil {
		score = fmt.Sprintf("%.3f", *r.Score)
	}

	examples := md.ContextExamples
	if len(examples) > constant.MaxContextExamples {
		examples = examples[:constant.MaxContextExamples]
	}
	examplesLine := "examples: -"
	if len(examples) > 0 {
		examplesLine = "examples:\n- " + strings.Join(examples, "\n- ")
	}

	return strings.Join([]string{
		"id: " + r.ID,
		"score: " + score,
		"lang: " + orDash(md.Lang),
		"text: " + orDash(md.Text),
		"translation: " + orDash(md.Translation),
		"pinyin: " + orDash(md.Pinyin),
		examplesLine,
	}, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
