package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/constants"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
)

const defaultUserAgent = "wikitude-cloud-recognition-go"

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the HTTP transport for the recognition management API. It
// attaches the credential headers, sends one request per call, and turns
// non-success responses into typed errors. Retries are disabled unless
// explicitly configured with WithRetryConfig.
type Client struct {
	baseURL     string
	token       string
	version     string
	userAgent   string
	retryClient *retryablehttp.Client
	logger      Logger
	debug       bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
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

// WithRetryConfig enables transport-level retries for transient failures.
// API error semantics are unaffected: 4xx responses are never retried.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a new HTTP client for the given endpoint and
// credential. The token and version are immutable for the client's
// lifetime and sent with every request.
func NewClient(baseURL, token, version string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// The default handler discards the last response once retries are
	// exhausted, which would hide 5xx and 429 bodies from classifyError.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		token:       token,
		version:     version,
		userAgent:   defaultUserAgent,
		retryClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    interface{}
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// HasJSONBody reports whether the response carries a decodable JSON body.
// A JSON content type with a Content-Length of "0" counts as no body.
func (r *Response) HasJSONBody() bool {
	contentType := r.Headers.Get("Content-Type")
	contentLength := r.Headers.Get("Content-Length")

	return strings.Contains(contentType, "application/json") &&
		contentLength != "0" &&
		len(r.Body) > 0
}

// resolveMethod maps the logical method onto the wire method. GET, POST,
// and DELETE are the only methods the API uses; anything else is sent as
// POST, a permissive fallback preserved from the original service design.
func resolveMethod(method string) string {
	switch strings.ToUpper(method) {
	case nethttp.MethodGet:
		return nethttp.MethodGet
	case nethttp.MethodDelete:
		return nethttp.MethodDelete
	default:
		return nethttp.MethodPost
	}
}

// resolveURL resolves a path against the base URL. Absolute URLs (the
// Location reference of an asynchronous operation) pass through untouched.
func (c *Client) resolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return c.baseURL + path
}

// Do executes a request and returns the response. Transport failures are
// returned as wrapped plain errors; API error responses are returned as
// *crs.ServiceError or *crs.GeneralError alongside the raw response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	method := resolveMethod(req.Method)
	fullURL := c.resolveURL(req.Path)

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(constants.HeaderToken, c.token)
	httpReq.Header.Set(constants.HeaderVersion, c.version)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    fullURL,
		})
	}

	if !isSuccess(resp.StatusCode) {
		return resp, classifyError(resp)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path})
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

// isSuccess reports whether the status code is one the API uses for
// successful operations.
func isSuccess(statusCode int) bool {
	switch statusCode {
	case nethttp.StatusOK, nethttp.StatusAccepted, nethttp.StatusNoContent:
		return true
	default:
		return false
	}
}

// classifyError turns a non-success response into a typed error. The
// service sometimes answers with structured diagnostic JSON and sometimes
// with plain text or an empty body, so JSON is never assumed.
func classifyError(resp *Response) error {
	if resp.HasJSONBody() {
		var svcErr crs.ServiceError

		err := json.Unmarshal(resp.Body, &svcErr)
		if err == nil {
			return &svcErr
		}
	}

	return &crs.GeneralError{
		Message: string(resp.Body),
		Code:    resp.StatusCode,
	}
}
