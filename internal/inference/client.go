package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strings"
	"sync"
	"time"

	"scanworker/internal/infra"
)

// Options controls how the inference client is configured.
type Options struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client provides a lightweight facade over the document-understanding
// service so the worker can focus on job lifecycle rather than wire details.
// The service receives a decoded receipt image and answers with an untyped
// nested structure; no schema is guaranteed beyond "some subset of known key
// name variants may appear".
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger

	mu     sync.Mutex
	device string
}

// NewClient validates the options and returns a ready client.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("inference: base url is required")
	}
	if opts.Model == "" {
		return nil, errors.New("inference: model name is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		model:      opts.Model,
		httpClient: httpClient,
		logger:     opts.Logger,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

type extractRequest struct {
	Model string `json:"model"`
	Image string `json:"image"`
}

type extractResponse struct {
	Result map[string]any `json:"result"`
}

// Extract sends the decoded receipt image to the inference service and
// returns its raw structured guess. The image travels as base64 PNG.
func (c *Client) Extract(ctx context.Context, img image.Image) (map[string]any, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("inference: encode image: %w", err)
	}

	payload, err := json.Marshal(extractRequest{
		Model: c.model,
		Image: base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
	if err != nil {
		return nil, fmt.Errorf("inference: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/extract", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("inference: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference: call service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference: unexpected status %d", resp.StatusCode)
	}

	var out extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("inference: decode response: %w", err)
	}
	if out.Result == nil {
		out.Result = map[string]any{}
	}
	return out.Result, nil
}

type healthResponse struct {
	Device string `json:"device"`
}

// Device reports the compute device the inference service runs the model on,
// probing its health endpoint on first use and caching the answer. It returns
// "unknown" while the service is unreachable so the trigger surface's health
// query never fails on a cold dependency.
func (c *Client) Device(ctx context.Context) string {
	c.mu.Lock()
	cached := c.device
	c.mu.Unlock()
	if cached != "" {
		return cached
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/health", nil)
	if err != nil {
		return "unknown"
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug().Err(err).Msg("inference: health probe failed")
		}
		return "unknown"
	}
	defer resp.Body.Close()

	var out healthResponse
	if resp.StatusCode != http.StatusOK || json.NewDecoder(resp.Body).Decode(&out) != nil || out.Device == "" {
		return "unknown"
	}

	c.mu.Lock()
	c.device = out.Device
	c.mu.Unlock()
	return out.Device
}
