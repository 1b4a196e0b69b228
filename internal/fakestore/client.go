package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ProductFetcher defines the interface for fetching the product catalog.
// This interface is implemented by *Client and can be used for testing.
type ProductFetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Ensure Client implements ProductFetcher at compile time.
var _ ProductFetcher = (*Client)(nil)

// Client talks to the product catalog HTTP endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultEndpoint is the catalog URL used when no override is configured.
	DefaultEndpoint = "https://fakestoreapi.com/products"

	defaultUserAgent = "vitrine/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given endpoint URL. An empty endpoint
// falls back to DefaultEndpoint; a zero timeout falls back to the default.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	parsed, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: parsed,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the normalized endpoint URL the client requests.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchProducts issues a single GET to the catalog endpoint and decodes the
// response as a product array. It does not retry; failures are reported as
// *TransportError, *StatusError, or *DecodeError.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var products []Product
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&products); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return products, nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", endpoint)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.Fragment = ""
	return u, nil
}
