package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"translator-ai-be/pkg/vectorindex"
)

// Item is one row of the offline seed file: a precomputed embedding plus its
// phrase metadata.
type Item struct {
	Id       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata"`
}

// ReadFile loads and validates a JSON array of seed items. Any invalid row
// fails the whole load; partially seeding an index is worse than not seeding
// it.
func ReadFile(path string, expectedDim int) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("seed file contains no items")
	}

	for i, item := range items {
		if err := validateItem(item, expectedDim); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return items, nil
}

func validateItem(item Item, expectedDim int) error {
	if item.Id == "" {
		return fmt.Errorf("missing id")
	}
	if len(item.Values) != expectedDim {
		return fmt.Errorf("id %q: expected %d dimensions, got %d", item.Id, expectedDim, len(item.Values))
	}
	text, _ := item.Metadata["text"].(string)
	if text == "" {
		return fmt.Errorf("id %q: metadata.text is empty", item.Id)
	}
	return nil
}

// Chunk splits items into batches of at most size.
func Chunk(items []Item, size int) [][]Item {
	if size < 1 {
		size = 1
	}
	var batches [][]Item
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}

// ToRecords converts validated items into index upsert records.
func ToRecords(items []Item) []vectorindex.Record {
	records := make([]vectorindex.Record, len(items))
	for i, item := range items {
		records[i] = vectorindex.Record{
			ID:       item.Id,
			Values:   item.Values,
			Metadata: item.Metadata,
		}
	}
	return records
}
