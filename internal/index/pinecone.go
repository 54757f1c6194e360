package index

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultControlURL = "https://api.pinecone.io"

// upsertBatchSize bounds one upsert request; Pinecone rejects oversized
// payloads and the fetch URL has a length limit.
const upsertBatchSize = 100

// Pinecone is a minimal REST client for one serverless Pinecone index: the
// remote source of truth that the local database mirrors.
type Pinecone struct {
	apiKey     string
	index      string
	cloud      string
	region     string
	controlURL string
	host       string // data-plane base URL, resolved by Connect/EnsureIndex
	client     *http.Client
}

func NewPinecone(apiKey, index, cloud, region string) *Pinecone {
	return &Pinecone{
		apiKey:     apiKey,
		index:      index,
		cloud:      cloud,
		region:     region,
		controlURL: defaultControlURL,
		client:     &http.Client{Timeout: 60 * time.Second},
	}
}

type indexDescription struct {
	Name   string `json:"name"`
	Host   string `json:"host"`
	Status struct {
		Ready bool `json:"ready"`
	} `json:"status"`
}

// Connect resolves the index host. The index must already exist.
func (p *Pinecone) Connect(ctx context.Context) error {
	desc, err := p.describe(ctx)
	if err != nil {
		return err
	}
	p.host = "https://" + desc.Host
	return nil
}

// EnsureIndex creates the index if it does not exist and waits until it is
// ready to accept vectors.
func (p *Pinecone) EnsureIndex(ctx context.Context, dimension int) error {
	desc, err := p.describe(ctx)
	if err == nil {
		log.Printf("   ℹ️  Index %q already exists", p.index)
		p.host = "https://" + desc.Host
		return nil
	}

	log.Printf("   → Creating index %q (%d dimensions)...", p.index, dimension)
	body := map[string]interface{}{
		"name":      p.index,
		"dimension": dimension,
		"metric":    "cosine",
		"spec": map[string]interface{}{
			"serverless": map[string]string{
				"cloud":  p.cloud,
				"region": p.region,
			},
		},
	}
	if err := p.do(ctx, http.MethodPost, p.controlURL+"/indexes", body, nil); err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	for {
		desc, err := p.describe(ctx)
		if err != nil {
			return err
		}
		if desc.Status.Ready {
			p.host = "https://" + desc.Host
			log.Printf("   ✅ Index ready")
			return nil
		}
		log.Printf("   ⏳ Waiting for index to become ready...")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
}

func (p *Pinecone) describe(ctx context.Context) (*indexDescription, error) {
	var desc indexDescription
	if err := p.do(ctx, http.MethodGet, p.controlURL+"/indexes/"+p.index, nil, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Stats returns the total vector count of the index.
func (p *Pinecone) Stats(ctx context.Context) (int, error) {
	var out struct {
		TotalVectorCount int `json:"totalVectorCount"`
	}
	if err := p.do(ctx, http.MethodPost, p.host+"/describe_index_stats", map[string]interface{}{}, &out); err != nil {
		return 0, fmt.Errorf("describe index stats: %w", err)
	}
	return out.TotalVectorCount, nil
}

// DeleteAll removes every vector, so a re-ingest never leaves duplicates.
func (p *Pinecone) DeleteAll(ctx context.Context) error {
	body := map[string]interface{}{"deleteAll": true}
	if err := p.do(ctx, http.MethodPost, p.host+"/vectors/delete", body, nil); err != nil {
		return fmt.Errorf("delete vectors: %w", err)
	}
	return nil
}

type pineconeVector struct {
	ID       string            `json:"id"`
	Values   []float32         `json:"values"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Upsert uploads records in batches, logging progress per batch.
func (p *Pinecone) Upsert(ctx context.Context, records []Record) error {
	for i := 0; i < len(records); i += upsertBatchSize {
		end := i + upsertBatchSize
		if end > len(records) {
			end = len(records)
		}

		vectors := make([]pineconeVector, 0, end-i)
		for _, r := range records[i:end] {
			vectors = append(vectors, pineconeVector{ID: r.ID, Values: r.Values, Metadata: r.Metadata})
		}
		body := map[string]interface{}{"vectors": vectors}
		if err := p.do(ctx, http.MethodPost, p.host+"/vectors/upsert", body, nil); err != nil {
			return fmt.Errorf("upsert batch at %d: %w", i, err)
		}
		log.Printf("   → Uploaded %d/%d", end, len(records))
	}
	return nil
}

// Query returns the topK nearest vectors with their metadata.
func (p *Pinecone) Query(ctx context.Context, vector []float32, topK int) ([]Result, error) {
	body := map[string]interface{}{
		"vector":          vector,
		"topK":            topK,
		"includeMetadata": true,
	}
	var out struct {
		Matches []struct {
			ID       string            `json:"id"`
			Score    float32           `json:"score"`
			Metadata map[string]string `json:"metadata"`
		} `json:"matches"`
	}
	if err := p.do(ctx, http.MethodPost, p.host+"/query", body, &out); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	results := make([]Result, 0, len(out.Matches))
	for _, m := range out.Matches {
		results = append(results, Result{ID: m.ID, Score: m.Score, Metadata: m.Metadata})
	}
	return results, nil
}

// ListIDs pages through every vector ID in the index.
func (p *Pinecone) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	token := ""
	for {
		u := p.host + "/vectors/list"
		if token != "" {
			u += "?paginationToken=" + url.QueryEscape(token)
		}
		var out struct {
			Vectors []struct {
				ID string `json:"id"`
			} `json:"vectors"`
			Pagination struct {
				Next string `json:"next"`
			} `json:"pagination"`
		}
		if err := p.do(ctx, http.MethodGet, u, nil, &out); err != nil {
			return nil, fmt.Errorf("list vectors: %w", err)
		}
		for _, v := range out.Vectors {
			ids = append(ids, v.ID)
		}
		if out.Pagination.Next == "" {
			return ids, nil
		}
		token = out.Pagination.Next
	}
}

// Fetch downloads vectors with values and metadata, batched to keep the
// request URL within limits.
func (p *Pinecone) Fetch(ctx context.Context, ids []string) ([]Record, error) {
	var records []Record
	for i := 0; i < len(ids); i += upsertBatchSize {
		end := i + upsertBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		q := url.Values{}
		for _, id := range ids[i:end] {
			q.Add("ids", id)
		}
		var out struct {
			Vectors map[string]pineconeVector `json:"vectors"`
		}
		if err := p.do(ctx, http.MethodGet, p.host+"/vectors/fetch?"+q.Encode(), nil, &out); err != nil {
			return nil, fmt.Errorf("fetch vectors: %w", err)
		}
		for _, id := range ids[i:end] {
			v, ok := out.Vectors[id]
			if !ok {
				continue
			}
			records = append(records, Record{ID: id, Values: v.Values, Metadata: v.Metadata})
		}
	}
	return records, nil
}

// do sends one JSON request and decodes the JSON response into out, if any.
func (p *Pinecone) do(ctx context.Context, method, rawURL string, body, out interface{}) error {
	if p.apiKey == "" {
		return fmt.Errorf("PINECONE_API_KEY is not set")
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Api-Key", p.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pinecone returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
