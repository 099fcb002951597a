// Package search is the Tavily web-search client.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cloo-solutions/shopmate/internal/domain"
)

const (
	DefaultBaseURL = "https://api.tavily.com"

	defaultTimeout    = 30 * time.Second
	defaultRate       = 5
	defaultBurst      = 1
	defaultMaxResults = 5
	maxErrorBody      = 512
)

// Options configures a Client. Zero values take defaults.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// Rate is the sustained request rate per second.
	Rate  float64
	Burst int
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client calls the Tavily search API. It is safe for sequential use by one
// user session; the limiter paces every call.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a Tavily client.
func NewClient(apiKey string, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Rate <= 0 {
		opts.Rate = defaultRate
	}
	if opts.Burst <= 0 {
		opts.Burst = defaultBurst
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		httpClient:  httpClient,
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(opts.Rate), opts.Burst),
	}
}

// APIError is a non-2xx answer from the search API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("search API error (%d): %s", e.StatusCode, e.Message)
}

type searchRequest struct {
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth,omitempty"`
	MaxResults     int      `json:"max_results"`
	IncludeDomains []string `json:"include_domains,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`
	IncludeImages  bool     `json:"include_images,omitempty"`
}

type searchResponse struct {
	Query   string `json:"query"`
	Results []struct {
		URL     string   `json:"url"`
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Images  []string `json:"images"`
	} `json:"results"`
	Images []json.RawMessage `json:"images"`
}

// Search runs one query. Every failure is wrapped in domain.ErrSearchFailed.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return domain.SearchResponse{}, domain.ErrEmptyInput
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return domain.SearchResponse{}, domain.ErrSearchFailed.WithCause(fmt.Errorf("rate limiter: %w", err))
	}

	body := searchRequest{
		Query:          req.Query,
		SearchDepth:    string(req.Depth),
		MaxResults:     req.MaxResults,
		IncludeDomains: req.IncludeDomains,
		ExcludeDomains: req.ExcludeDomains,
		IncludeImages:  req.IncludeImages,
	}
	if body.MaxResults <= 0 {
		body.MaxResults = defaultMaxResults
	}

	resp, err := c.do(ctx, "/search", body)
	if err != nil {
		return domain.SearchResponse{}, domain.ErrSearchFailed.WithCause(err)
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, path string, body interface{}) (domain.SearchResponse, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return domain.SearchResponse{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return domain.SearchResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.SearchResponse{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.SearchResponse{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return domain.SearchResponse{}, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	var parsed searchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return domain.SearchResponse{}, fmt.Errorf("failed to parse response: %w", err)
	}

	out := domain.SearchResponse{
		Results: make([]domain.RawResult, 0, len(parsed.Results)),
		Images:  imageURLs(parsed.Images),
	}
	for _, r := range parsed.Results {
		out.Results = append(out.Results, domain.RawResult{
			URL:     r.URL,
			Title:   r.Title,
			Content: r.Content,
			Images:  r.Images,
		})
	}
	return out, nil
}

// imageURLs accepts both plain URL strings and {"url": ...} objects.
func imageURLs(raw []json.RawMessage) []string {
	var out []string
	for _, m := range raw {
		var s string
		if err := json.Unmarshal(m, &s); err == nil {
			if s != "" {
				out = append(out, s)
			}
			continue
		}
		var obj struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(m, &obj); err == nil && obj.URL != "" {
			out = append(out, obj.URL)
		}
	}
	return out
}

func errorMessage(body []byte) string {
	var e struct {
		Detail json.RawMessage `json:"detail"`
		Error  string          `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Error != "" {
			return e.Error
		}
		if len(e.Detail) > 0 {
			var detail struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(e.Detail, &detail); err == nil && detail.Error != "" {
				return detail.Error
			}
			var s string
			if err := json.Unmarshal(e.Detail, &s); err == nil && s != "" {
				return s
			}
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	return msg
}

// IsAPIError reports whether err carries an APIError with the given status.
func IsAPIError(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
