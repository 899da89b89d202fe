package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"awards-cms-go/pkg/model"
)

// ClientConfig holds configuration for the awards API client
type ClientConfig struct {
	BaseURL    string
	WriteToken string // bearer token for PUT/DELETE operations
	Timeout    time.Duration
}

// Client is an HTTP client for the awards API, used by the document
// editor's save path and the awardsctl CLI
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

// APIError carries the status and error body of a failed API call
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// NewClient creates a new awards API client
func NewClient(config ClientConfig) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// do sends a request and decodes the JSON response into out when the
// call succeeds; error bodies are turned into *APIError
func (c *Client) do(ctx context.Context, method, path string, body any, authenticated bool, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+c.config.WriteToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// ListRegions fetches all known region identifiers
func (c *Client) ListRegions(ctx context.Context) ([]string, error) {
	var resp model.RegionListResponse
	if err := c.do(ctx, http.MethodGet, "/api/regions", nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Regions, nil
}

// GetRegion fetches the full document for a region
func (c *Client) GetRegion(ctx context.Context, region string) (*model.RegionDocument, error) {
	var doc model.RegionDocument
	if err := c.do(ctx, http.MethodGet, "/api/awards/"+url.PathEscape(region), nil, false, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateRegion creates a new region seeded from the default template
func (c *Client) CreateRegion(ctx context.Context, region string) (*model.RegionDocument, error) {
	var doc model.RegionDocument
	req := model.RegionCreateRequest{Region: region}
	if err := c.do(ctx, http.MethodPost, "/api/awards", req, false, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateRegion performs a full-replace upsert of a region's content
func (c *Client) UpdateRegion(ctx context.Context, region string, content model.RegionContent) (*model.RegionDocument, error) {
	var doc model.RegionDocument
	if err := c.do(ctx, http.MethodPut, "/api/awards/"+url.PathEscape(region), content, true, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteRegion removes a region document
func (c *Client) DeleteRegion(ctx context.Context, region string) error {
	return c.do(ctx, http.MethodDelete, "/api/awards/"+url.PathEscape(region), nil, true, nil)
}

// Login authenticates against the API and returns a session token
func (c *Client) Login(ctx context.Context, creds model.UserCredentials) (string, error) {
	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", creds, false, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}
