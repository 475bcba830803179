// Package http implements the transport layer: it turns travis.Request
// values into authenticated HTTPS calls against the configured endpoint and
// returns raw travis.Response values. Retries for transient transport
// failures are delegated to retryablehttp; decode failures and API errors
// are never retried here.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/trvs-io/travis-client/internal/auth"
	"github.com/trvs-io/travis-client/internal/constants"
	"github.com/trvs-io/travis-client/pkg/travis"
)

const (
	apiVersion       = "3"
	defaultUserAgent = "travis-client-go"
)

// Client issues API requests against one fixed endpoint.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokens       auth.TokenProvider
	userAgent    string
	debug        bool
	logger       travis.Logger
	interceptors *travis.InterceptorChain
	cache        travis.Cache
	cacheTTL     time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger travis.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes transport-level retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithInterceptors installs a request/response interceptor chain.
func WithInterceptors(chain *travis.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithCache installs a cache for GET response bodies. A zero ttl uses the
// default.
func WithCache(cache travis.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache

		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// NewClient creates a transport client for the given endpoint. A nil token
// provider sends unauthenticated requests.
func NewClient(baseURL string, tokens auth.TokenProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	// Keep the final response when retries are exhausted so 5xx bodies can
	// still be decoded into structured API errors.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		tokens:     tokens,
		userAgent:  defaultUserAgent,
		cacheTTL:   constants.DefaultCacheTTL,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and returns the raw response. Responses with an
// error status are decoded into *travis.APIError where possible; bodies
// that are not structured error documents fall back to a generic error
// wrapping travis.ErrUndecodableResponse.
func (c *Client) Do(ctx context.Context, req *travis.Request) (*travis.Response, error) {
	if c.interceptors != nil {
		if err := c.interceptors.ExecuteRequestInterceptors(ctx, req); err != nil {
			return nil, err
		}
	}

	if resp, ok := c.cachedResponse(ctx, req); ok {
		return resp, nil
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"query":  req.Query.Encode(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &travis.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API response", map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		})
	}

	if c.interceptors != nil {
		if err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.responseError(resp)
	}

	c.storeResponse(ctx, req, resp)

	return resp, nil
}

// DoAsync executes a request in the background and delivers the outcome to
// callback exactly once, on the supplied executor. The callback is never
// invoked inline.
func (c *Client) DoAsync(ctx context.Context, req *travis.Request, exec travis.Executor, callback func(*travis.Response, error)) {
	var once sync.Once

	go func() {
		resp, err := c.Do(ctx, req)

		once.Do(func() {
			exec.Execute(func() {
				callback(resp, err)
			})
		})
	}()
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*travis.Response, error) {
	return c.Do(ctx, &travis.Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*travis.Response, error) {
	return c.Do(ctx, &travis.Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*travis.Response, error) {
	return c.Do(ctx, &travis.Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*travis.Response, error) {
	return c.Do(ctx, &travis.Request{Method: http.MethodDelete, Path: path, Query: query})
}

// buildRequest assembles the outgoing HTTP request: URL, body, and the
// fixed header set (API version, accept, user agent, token).
func (c *Client) buildRequest(ctx context.Context, req *travis.Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		rawBody     io.Reader
		contentType string
	)

	switch body := req.Body.(type) {
	case nil:
	case []byte:
		// Raw payloads (lint) are sent verbatim.
		rawBody = bytes.NewReader(body)
		contentType = "text/plain"
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		rawBody = bytes.NewReader(data)
		contentType = "application/json"
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Travis-API-Version", apiVersion)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("obtaining token: %w", err)
		}

		if token != "" {
			httpReq.Header.Set("Authorization", "token "+token)
		}
	}

	return httpReq, nil
}

// responseError converts an error-status response into a typed error.
func (c *Client) responseError(resp *travis.Response) error {
	apiErr, err := travis.ParseErrorResponse(resp.Body, resp.StatusCode)
	if err != nil {
		return fmt.Errorf("%w: status %d", travis.ErrUndecodableResponse, resp.StatusCode)
	}

	return apiErr
}

// cacheKey identifies a GET request for the response cache.
func cacheKey(req *travis.Request) string {
	return req.Path + "?" + req.Query.Encode()
}

// cachedResponse serves a GET from the cache when possible.
func (c *Client) cachedResponse(ctx context.Context, req *travis.Request) (*travis.Response, bool) {
	if c.cache == nil || req.Method != http.MethodGet {
		return nil, false
	}

	entry, err := c.cache.Get(ctx, cacheKey(req))
	if err != nil {
		return nil, false
	}

	return &travis.Response{
		StatusCode: http.StatusOK,
		Body:       entry.Data,
	}, true
}

// storeResponse caches successful GET bodies.
func (c *Client) storeResponse(ctx context.Context, req *travis.Request, resp *travis.Response) {
	if c.cache == nil || req.Method != http.MethodGet || resp.StatusCode != http.StatusOK {
		return
	}

	entry := &travis.CacheEntry{
		Data:      resp.Body,
		ExpiresAt: time.Now().Add(c.cacheTTL),
	}

	_ = c.cache.Set(ctx, cacheKey(req), entry)
}
