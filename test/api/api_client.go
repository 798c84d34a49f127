/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/nscaledev/discogs-conformance/pkg/constants"
	"github.com/nscaledev/discogs-conformance/pkg/discogs"
)

var (
	// ErrUnexpectedStatus is returned when a response status doesn't match
	// what the caller asked for.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// TransportError is a failure to get a response at all: DNS, connection,
// timeout or a truncated body.  It is never an assertion failure.
type TransportError struct {
	Method  string
	URL     string
	TraceID string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %s %s (trace ID: %s): %v", e.Method, e.URL, e.TraceID, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError tells whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var transportError *TransportError

	return errors.As(err, &transportError)
}

// Doer sends HTTP requests, *http.Client implements it.
//
//go:generate mockgen -source=api_client.go -destination=mock/doer.go -package=mock
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// SearchResult is everything observed about one search call.
type SearchResult struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Request    *http.Request
	TraceID    string
}

// Keys decodes the top level JSON object, for presence checks.
func (r *SearchResult) Keys() (map[string]json.RawMessage, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(r.Body, &keys); err != nil {
		return nil, fmt.Errorf("unmarshaling response body (status %d): %w", r.StatusCode, err)
	}

	return keys, nil
}

// SearchResponse decodes a successful search body.
func (r *SearchResult) SearchResponse() (*discogs.SearchResponse, error) {
	var response discogs.SearchResponse
	if err := json.Unmarshal(r.Body, &response); err != nil {
		return nil, fmt.Errorf("unmarshaling search response (status %d): %w", r.StatusCode, err)
	}

	return &response, nil
}

// ErrorResponse decodes an error body.
func (r *SearchResult) ErrorResponse() (*discogs.ErrorResponse, error) {
	var response discogs.ErrorResponse
	if err := json.Unmarshal(r.Body, &response); err != nil {
		return nil, fmt.Errorf("unmarshaling error response (status %d): %w", r.StatusCode, err)
	}

	return &response, nil
}

type APIClient struct {
	baseURL   string
	client    Doer
	config    *TestConfig
	endpoints *Endpoints
}

// APIClientOption customizes the client.
type APIClientOption func(*APIClient)

// WithDoer replaces the HTTP client, for tests.
func WithDoer(doer Doer) APIClientOption {
	return func(c *APIClient) {
		c.client = doer
	}
}

func NewAPIClientWithConfig(config *TestConfig, options ...APIClientOption) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to correlate this request\n", extractTraceID(traceParent))
}

// redact hides the secret in logged headers.
func redact(header http.Header) http.Header {
	redacted := header.Clone()

	if redacted.Get("Authorization") != "" {
		redacted.Set("Authorization", constants.AuthorizationScheme+" <redacted>")
	}

	return redacted
}

// generateTraceID creates a new W3C trace ID.
// A new trace ID per request means a failure can be matched to the request that caused it.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest issues exactly one request, there are no retries.  The header is
// copied before use so the caller's map is never modified.
func (c *APIClient) doRequest(ctx context.Context, method, path string, header http.Header) (*SearchResult, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header = header.Clone()
	if req.Header == nil {
		req.Header = http.Header{}
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("User-Agent", constants.VersionString())

	if c.config.DebugLogging {
		ginkgo.GinkgoWriter.Printf("[%s %s] request headers: %v\n", method, path, redact(req.Header))
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")

		return nil, &TransportError{
			Method:  method,
			URL:     fullURL,
			TraceID: extractTraceID(traceParent),
			Err:     err,
		}
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")

		return nil, &TransportError{
			Method:  method,
			URL:     fullURL,
			TraceID: extractTraceID(traceParent),
			Err:     fmt.Errorf("reading response body: %w", err),
		}
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	result := &SearchResult{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Request:    req,
		TraceID:    extractTraceID(traceParent),
	}

	return result, nil
}

// Search performs a database search, any status is a valid result.
func (c *APIClient) Search(ctx context.Context, request SearchRequest) (*SearchResult, error) {
	result, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Search(request), request.Header)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	return result, nil
}

// SearchExpect performs a database search and checks the status code.  The
// result is returned even when the status doesn't match, for diagnosis.
func (c *APIClient) SearchExpect(ctx context.Context, request SearchRequest, expectedStatus int) (*SearchResult, error) {
	result, err := c.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	if result.StatusCode != expectedStatus {
		path := c.endpoints.Search(request)

		c.logUnexpectedStatus(http.MethodGet, path, expectedStatus, result.StatusCode, string(result.Body), result.Request.Header.Get("Traceparent"))

		return result, fmt.Errorf("%w: expected %d, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, expectedStatus, result.StatusCode, string(result.Body), result.TraceID)
	}

	return result, nil
}
