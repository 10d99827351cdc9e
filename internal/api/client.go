package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/woopy/woo-cli/internal/debug"
	"github.com/woopy/woo-cli/internal/metrics"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultAPIPath   = "/wp-json/wc/v3"
	DefaultUserAgent = "woo-cli"
)

// AuthStrategy is the authentication applied to one request.
type AuthStrategy int

const (
	AuthBasic AuthStrategy = iota
	AuthQueryString
	AuthOAuth1
)

func (a AuthStrategy) String() string {
	switch a {
	case AuthQueryString:
		return "query_string"
	case AuthOAuth1:
		return "oauth1"
	default:
		return "basic"
	}
}

// InsecurePolicy decides what happens when the base URL is plaintext HTTP.
type InsecurePolicy int

const (
	// InsecureSign signs every plaintext request with one-legged OAuth 1.0a.
	InsecureSign InsecurePolicy = iota
	// InsecureReject refuses to send requests over plaintext HTTP.
	InsecureReject
)

// ParseInsecurePolicy maps "sign" and "reject" to a policy. Empty means sign.
func ParseInsecurePolicy(s string) (InsecurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sign":
		return InsecureSign, nil
	case "reject":
		return InsecureReject, nil
	}
	return InsecureSign, fmt.Errorf("invalid insecure policy %q (expected sign or reject)", s)
}

// Client is the WooCommerce REST API client.
//
// Credentials are fixed for the lifetime of the client. A Client is safe
// for concurrent use; every request computes its own auth parameters.
type Client struct {
	baseURL         string
	apiPath         string
	consumerKey     string
	consumerSecret  string
	queryStringAuth bool
	verifySSL       bool
	timeout         time.Duration
	userAgent       string
	insecurePolicy  InsecurePolicy

	http    *http.Client
	signer  *Signer
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Compile-time interface implementation checks
var (
	_ Requester    = (*Client)(nil)
	_ PathResolver = (*Client)(nil)
	_ HTTPExecutor = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client)

// WithQueryStringAuth sends consumer_key and consumer_secret as query
// parameters on HTTPS instead of a Basic Auth header.
func WithQueryStringAuth(enabled bool) Option {
	return func(c *Client) {
		c.queryStringAuth = enabled
	}
}

// WithVerifySSL toggles TLS certificate verification.
func WithVerifySSL(verify bool) Option {
	return func(c *Client) {
		c.verifySSL = verify
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Timeout and TLS
// options are not applied to it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithAPIPath sets the path prefix that endpoints are relative to.
func WithAPIPath(path string) Option {
	return func(c *Client) {
		c.apiPath = path
	}
}

// WithSigner replaces the OAuth signer used for plaintext HTTP.
func WithSigner(s *Signer) Option {
	return func(c *Client) {
		c.signer = s
	}
}

// WithInsecurePolicy sets how plaintext HTTP base URLs are handled.
func WithInsecurePolicy(p InsecurePolicy) Option {
	return func(c *Client) {
		c.insecurePolicy = p
	}
}

// WithRateLimit throttles outgoing requests to perSecond with the given
// burst. Requests wait for a token; nothing is retried.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a new WooCommerce API client for the store at baseURL.
func New(baseURL, consumerKey, consumerSecret string, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiPath:        DefaultAPIPath,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		verifySSL:      true,
		timeout:        DefaultTimeout,
		userAgent:      DefaultUserAgent,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{
			Timeout:   c.timeout,
			Transport: newTransport(c.verifySSL),
		}
	}
	if c.signer == nil {
		c.signer = NewSigner(consumerKey, consumerSecret)
	}
	c.apiPath = "/" + strings.Trim(c.apiPath, "/")

	c.logger.Debug("initializing API client",
		"url", c.baseURL,
		"consumer_key", redact(consumerKey),
		"consumer_secret", redact(consumerSecret),
		"query_string_auth", c.queryStringAuth,
		"verify_ssl", c.verifySSL,
	)
	if !c.isSecure() {
		c.logger.Warn("store URL is not HTTPS; credentials travel over plaintext HTTP", "url", c.baseURL)
	}
	if !c.verifySSL {
		c.logger.Warn("TLS certificate verification is disabled", "url", c.baseURL)
	}
	return c
}

func newTransport(verifySSL bool) *http.Transport {
	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		baseTransport = &http.Transport{}
	}
	transport := baseTransport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12
	transport.TLSClientConfig.InsecureSkipVerify = !verifySSL //nolint:gosec // opt-in via verify_ssl=false
	return transport
}

// BaseURL returns the store URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) isSecure() bool {
	u, err := url.Parse(c.baseURL)
	return err == nil && strings.EqualFold(u.Scheme, "https")
}

// authStrategy selects the authentication for one request. It is evaluated
// on every request.
func (c *Client) authStrategy() (AuthStrategy, error) {
	if c.isSecure() {
		if c.queryStringAuth {
			return AuthQueryString, nil
		}
		return AuthBasic, nil
	}
	if c.insecurePolicy == InsecureReject {
		return AuthBasic, &ConfigError{Reason: "plaintext HTTP is not supported by this client's policy; use an https:// store URL"}
	}
	return AuthOAuth1, nil
}

func (c *Client) endpointURL(endpoint string) string {
	endpoint = strings.TrimLeft(endpoint, "/")
	return c.baseURL + c.apiPath + "/" + endpoint
}

// Response is a raw API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Do sends exactly one request. body may be nil, a []byte or json.RawMessage
// sent verbatim, or any JSON-marshalable value shaped by mode.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, mode BodyMode, params Params) (*Response, error) {
	return c.send(ctx, method, endpoint, body, mode, params, false)
}

func (c *Client) lookup(ctx context.Context, endpoint string, params Params) (*Response, error) {
	return c.send(ctx, http.MethodGet, endpoint, nil, BodyFull, params, true)
}

func (c *Client) send(ctx context.Context, method, endpoint string, body any, mode BodyMode, params Params, notFoundOK bool) (*Response, error) {
	method = strings.ToUpper(method)

	strategy, err := c.authStrategy()
	if err != nil {
		return nil, err
	}

	payload, err := encodeBody(body, mode)
	if err != nil {
		return nil, err
	}

	reqURL := c.endpointURL(endpoint)
	query := params.Normalize()
	switch strategy {
	case AuthQueryString:
		query["consumer_key"] = c.consumerKey
		query["consumer_secret"] = c.consumerSecret
	case AuthOAuth1:
		query, err = c.signer.Sign(method, reqURL, query)
		if err != nil {
			return nil, err
		}
	}
	fullURL := reqURL
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		fullURL += "?" + values.Encode()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if strategy == AuthBasic {
		req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues("transport").Inc()
		c.logger.Error("request failed", "method", method, "endpoint", endpoint, "auth", strategy.String(), "error", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues("transport").Inc()
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	elapsed := time.Since(start)
	metrics.RequestsTotal.WithLabelValues(method, strategy.String(), strconv.Itoa(resp.StatusCode)).Inc()
	metrics.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	if debug.IsEnabled(ctx) {
		c.logger.Debug("request complete", "method", method, "endpoint", endpoint, "status", resp.StatusCode, "auth", strategy.String(), "duration", elapsed)
	}

	result := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: respBody}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return result, nil
	}
	if notFoundOK && resp.StatusCode == http.StatusNotFound {
		if debug.IsEnabled(ctx) {
			c.logger.Debug("resource not found", "endpoint", endpoint)
		}
		return nil, nil
	}

	apiErr := newAPIError(method, endpoint, resp.StatusCode, respBody)
	metrics.RequestErrorsTotal.WithLabelValues("status").Inc()
	c.logger.Error("API request failed",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"code", apiErr.Code,
		"message", apiErr.Message,
		"details", apiErr.Details,
	)
	return result, apiErr
}

// GetJSON performs a GET and returns the body as raw JSON. It works for
// any endpoint, including ones without a typed service.
func (c *Client) GetJSON(ctx context.Context, endpoint string, params Params) (json.RawMessage, error) {
	resp, err := c.Do(ctx, http.MethodGet, endpoint, nil, BodyFull, params)
	if err != nil {
		return nil, err
	}
	if !json.Valid(resp.Body) {
		metrics.RequestErrorsTotal.WithLabelValues("decode").Inc()
		return nil, &DecodeError{Endpoint: endpoint, Err: fmt.Errorf("response is not valid JSON")}
	}
	return json.RawMessage(resp.Body), nil
}

// decodeJSON unmarshals a response body into T and tracks the result when
// T supports change tracking.
func decodeJSON[T any](endpoint string, data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		metrics.RequestErrorsTotal.WithLabelValues("decode").Inc()
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	trackDecoded(&out)
	return &out, nil
}

func redact(secret string) string {
	if len(secret) <= 4 {
		return "****"
	}
	return "..." + secret[len(secret)-4:]
}
