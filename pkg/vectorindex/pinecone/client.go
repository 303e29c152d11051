package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"translator-ai-be/pkg/vectorindex"
)

// Client talks to a Pinecone serverless index over its data-plane HTTP API.
type Client struct {
	Host   string // index host, e.g. https://my-index-abc123.svc.us-east-1.pinecone.io
	ApiKey string
	Client *http.Client
}

var _ vectorindex.Index = &Client{}

func NewClient(host, apiKey string) *Client {
	return &Client{
		Host:   host,
		ApiKey: apiKey,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type queryResponse struct {
	Matches []queryMatch `json:"matches"`
}

type queryMatch struct {
	Id       string         `json:"id"`
	Score    *float64       `json:"score"`
	Metadata map[string]any `json:"metadata"`
}

type upsertRequest struct {
	Vectors []upsertVector `json:"vectors"`
}

type upsertVector struct {
	Id       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (c *Client) Query(ctx context.Context, req vectorindex.QueryRequest) ([]vectorindex.Match, error) {
	payload := queryRequest{
		Vector:          req.Vector,
		TopK:            req.TopK,
		IncludeMetadata: req.IncludeMetadata,
	}

	var resp queryResponse
	if err := c.post(ctx, "/query", payload, &resp); err != nil {
		return nil, err
	}

	matches := make([]vectorindex.Match, len(resp.Matches))
	for i, m := range resp.Matches {
		matches[i] = vectorindex.Match{
			ID:       m.Id,
			Score:    m.Score,
			Metadata: m.Metadata,
		}
	}
	return matches, nil
}

func (c *Client) Upsert(ctx context.Context, records []vectorindex.Record) error {
	payload := upsertRequest{
		Vectors: make([]upsertVector, len(records)),
	}
	for i, r := range records {
		payload.Vectors[i] = upsertVector{
			Id:       r.ID,
			Values:   r.Values,
			Metadata: r.Metadata,
		}
	}
	return c.post(ctx, "/vectors/upsert", payload, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Host+path, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Api-Key", c.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("pinecone %s: status %d, body %s", path, res.StatusCode, string(resBytes))
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(resBytes, out)
}
