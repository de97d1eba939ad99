package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scanworker/internal/domain"
	"scanworker/internal/infra"
)

// BucketOptions controls how the hosted bucket client is configured.
type BucketOptions struct {
	// BaseURL is the storage API root, e.g. https://<project>.example.co/storage/v1.
	BaseURL    string
	Bucket     string
	ServiceKey string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// BucketClient downloads receipt images from a hosted object-storage bucket
// over its HTTP API, authenticating with the service key.
type BucketClient struct {
	baseURL    string
	bucket     string
	serviceKey string
	httpClient *http.Client
	logger     *infra.Logger
}

// NewBucketClient validates the options and returns a ready client.
func NewBucketClient(opts BucketOptions) (*BucketClient, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("storage: bucket base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("storage: invalid bucket base url: %w", err)
	}
	if opts.Bucket == "" {
		return nil, errors.New("storage: bucket name is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &BucketClient{
		baseURL:    baseURL,
		bucket:     opts.Bucket,
		serviceKey: opts.ServiceKey,
		httpClient: httpClient,
		logger:     opts.Logger,
	}, nil
}

// Download fetches the object at the given key and returns its bytes.
func (c *BucketClient) Download(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return nil, errors.New("storage: key is required")
	}

	endpoint := fmt.Sprintf("%s/object/%s/%s", c.baseURL, url.PathEscape(c.bucket), key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: build request: %w", err)
	}
	if c.serviceKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage: download %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("storage: download %s: %w", key, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storage: download %s: unexpected status %d", key, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("storage: read body: %w", err)
	}
	if c.logger != nil {
		c.logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("storage: object downloaded")
	}
	return data, nil
}

var _ ObjectStore = (*BucketClient)(nil)
