// internal/upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wholesalenaija/admin-gateway/internal/config"
)

// Client performs authenticated calls against the marketplace backend. Every
// request is a single attempt: no retry, no backoff. Timeouts and caller
// cancellation travel through the request context and the underlying
// http.Client deadline.
type Client struct {
	baseURL      string
	serviceToken string
	devToken     string
	httpClient   *http.Client
	log          *logrus.Entry
}

// APIError is a non-2xx upstream response, carrying the status code and the
// raw response body text.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Body)
}

// RequestOptions tunes a single call. Headers override the computed defaults.
// ContentType must be set for multipart bodies (the multipart writer's
// boundary lives in it); when empty a JSON content type is assumed for any
// non-nil body.
type RequestOptions struct {
	Headers     map[string]string
	Token       string
	ContentType string
}

// Response wraps an upstream success. JSON bodies decode via Decode/DecodeList;
// anything else is available as text.
type Response struct {
	StatusCode int
	isJSON     bool
	raw        []byte
}

func (r *Response) IsJSON() bool { return r.isJSON }

func (r *Response) Text() string { return string(r.raw) }

func (r *Response) Decode(v interface{}) error {
	if len(r.raw) == 0 {
		return io.EOF
	}
	return json.Unmarshal(r.raw, v)
}

// DecodeList decodes a collection response. The backend is inconsistent about
// envelopes: some endpoints return a bare array, others wrap it in a "data"
// field. Both shapes are accepted.
func (r *Response) DecodeList(v interface{}) error {
	if err := json.Unmarshal(r.raw, v); err == nil {
		return nil
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.raw, &wrapper); err == nil && len(wrapper.Data) > 0 {
		return json.Unmarshal(wrapper.Data, v)
	}

	return fmt.Errorf("response is neither a list nor a data envelope: %s", truncate(r.raw, 200))
}

// DecodeEntity decodes a single-entity response, unwrapping a "data" envelope
// when present. Returns false when the body holds no decodable entity, which
// callers treat as "server returned nothing, refetch".
func (r *Response) DecodeEntity(v interface{}) bool {
	if !r.isJSON || len(r.raw) == 0 {
		return false
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.raw, &wrapper); err == nil && len(wrapper.Data) > 0 && string(wrapper.Data) != "null" {
		return json.Unmarshal(wrapper.Data, v) == nil
	}

	return json.Unmarshal(r.raw, v) == nil
}

func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		serviceToken: cfg.ServiceToken,
		devToken:     cfg.DevToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		log: logrus.WithField("component", "upstream"),
	}
}

// Do performs one request against the backend. The endpoint path is appended
// to the configured base URL.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, opts *RequestOptions) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}

	// Computed defaults: bearer token and content type.
	if token := c.resolveToken(opts); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		if opts != nil && opts.ContentType != "" {
			// Multipart callers pass the writer's content type so the
			// boundary survives; no JSON header in that case.
			req.Header.Set("Content-Type", opts.ContentType)
		} else {
			req.Header.Set("Content-Type", "application/json")
		}
	}

	// Caller headers win over defaults.
	if opts != nil {
		for k, v := range opts.Headers {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("Upstream call failed")
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		isJSON:     strings.Contains(resp.Header.Get("Content-Type"), "application/json"),
		raw:        raw,
	}, nil
}

// DoJSON marshals payload as the JSON request body. A nil payload sends no
// body at all.
func (c *Client) DoJSON(ctx context.Context, method, path string, payload interface{}, opts *RequestOptions) (*Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.Do(ctx, method, path, body, opts)
}

// Get fetches path and decodes the collection response into v.
func (c *Client) GetList(ctx context.Context, path string, v interface{}) error {
	resp, err := c.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return resp.DecodeList(v)
}

func (c *Client) resolveToken(opts *RequestOptions) string {
	if opts != nil && opts.Token != "" {
		return opts.Token
	}
	if c.serviceToken != "" {
		return c.serviceToken
	}
	return c.devToken
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
