// internal/fdc/client.go
package fdc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://api.nal.usda.gov/fdc"

// Client talks to the FoodData Central API
// (https://fdc.nal.usda.gov/index.html).
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option tweaks a Client; used mainly to point tests at a local server.
type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchFoods queries /v1/foods/search and returns the first page of
// results (at most 10).
func (c *Client) SearchFoods(ctx context.Context, query string) ([]AbridgedFoodItem, error) {
	body := map[string]interface{}{
		"query":    query,
		"pageSize": 10,
	}
	raw, err := c.post(ctx, "/v1/foods/search", body)
	if err != nil {
		return nil, err
	}

	foods := gjson.GetBytes(raw, "foods")
	if !foods.Exists() {
		return nil, fmt.Errorf("search response has no foods array")
	}
	var items []AbridgedFoodItem
	if err := json.Unmarshal([]byte(foods.Raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode foods: %w", err)
	}
	return items, nil
}

// Foods fetches full records from /v1/foods for the given fdc ids. Each
// record decodes as branded or other depending on its dataType.
func (c *Client) Foods(ctx context.Context, fdcIDs []int32) ([]FoodRecord, error) {
	body := map[string]interface{}{
		"fdcIds": fdcIDs,
		"format": "full",
	}
	raw, err := c.post(ctx, "/v1/foods", body)
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(raw)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("foods response is not an array")
	}

	var records []FoodRecord
	for _, elem := range parsed.Array() {
		dataType := elem.Get("dataType").String()
		rec := FoodRecord{DataType: dataType}
		if dataType == "Branded" {
			var item BrandedFoodItem
			if err := json.Unmarshal([]byte(elem.Raw), &item); err != nil {
				return nil, fmt.Errorf("failed to decode branded food: %w", err)
			}
			rec.Branded = &item
		} else {
			var item APFoodItem
			if err := json.Unmarshal([]byte(elem.Raw), &item); err != nil {
				return nil, fmt.Errorf("failed to decode food: %w", err)
			}
			rec.Other = &item
		}
		records = append(records, rec)
	}
	return records, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s%s?api_key=%s", c.baseURL, path, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}
