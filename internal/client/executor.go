// Package client implements the request executor: it issues single calls
// against the prime-sum service, applies the retry policy, and converts
// every outcome (success, HTTP error, network error, timeout) into a
// uniform Outcome record.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/primebench/primebench/pkg/jsonschema"
)

// sumResponseSchema describes the expected shape of a /sum response body.
// Used only when response validation is enabled.
const sumResponseSchema = `{
	"type": "object",
	"required": ["n", "sum_of_primes", "time"],
	"properties": {
		"n": {"type": "integer"},
		"sum_of_primes": {"type": "integer"},
		"time": {"type": "number"}
	}
}`

// Executor issues one logical unit of work against the target service.
//
// Each call is independent and carries no shared mutable state, so a single
// Executor is safe for use from many concurrent callers. All failure modes
// are captured and returned as data; Execute never returns an error.
type Executor struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	retryDelay time.Duration
	schema     *jsonschema.Schema
}

// Option is a function that configures an Executor
type Option func(*Executor)

// NewExecutor creates an executor with the given options.
func NewExecutor(options ...Option) *Executor {
	e := &Executor{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: 3,
		retryDelay: time.Second,
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// WithBaseURL sets the target service root URL
func WithBaseURL(baseURL string) Option {
	return func(e *Executor) {
		e.baseURL = baseURL
	}
}

// WithTimeout sets the per-attempt HTTP timeout
func WithTimeout(timeout time.Duration) Option {
	return func(e *Executor) {
		e.httpClient.Timeout = timeout
	}
}

// WithMaxRetries sets the total number of attempts per call
func WithMaxRetries(maxRetries int) Option {
	return func(e *Executor) {
		if maxRetries >= 1 {
			e.maxRetries = maxRetries
		}
	}
}

// WithRetryDelay sets the fixed delay between attempts
func WithRetryDelay(delay time.Duration) Option {
	return func(e *Executor) {
		e.retryDelay = delay
	}
}

// WithResponseValidation enables JSON Schema validation of response
// bodies. A body that does not conform counts as a failed attempt.
func WithResponseValidation() Option {
	return func(e *Executor) {
		schema, err := jsonschema.Compile(sumResponseSchema)
		if err != nil {
			// The schema is a compile-time constant; this cannot fail
			// for a released binary.
			panic(err)
		}
		e.schema = schema
	}
}

// WithTransport overrides the underlying HTTP transport. Sweeps at high
// concurrency need more idle connections per host than the default.
func WithTransport(transport http.RoundTripper) Option {
	return func(e *Executor) {
		e.httpClient.Transport = transport
	}
}

// Execute issues one call with the configured retry policy and returns a
// uniform Outcome. Elapsed covers the whole attempt sequence, including
// inter-retry delays; downstream comparisons depend on that being
// consistent across runs, so it is deliberate, documented behavior.
func (e *Executor) Execute(ctx context.Context, n int) Outcome {
	start := time.Now()

	var lastReason string
	for attempt := 1; attempt <= e.maxRetries; attempt++ {
		payload, err := e.attempt(ctx, n)
		if err == nil {
			return Outcome{
				Payload: payload,
				Elapsed: time.Since(start),
				Success: true,
			}
		}

		lastReason = err.Error()

		if attempt == e.maxRetries {
			break
		}

		// Fixed-delay retry, no jitter or backoff growth. A retry storm
		// under high concurrency is possible; the consistent policy is
		// what keeps measurements comparable across levels.
		select {
		case <-time.After(e.retryDelay):
		case <-ctx.Done():
			return Outcome{
				Elapsed: time.Since(start),
				Success: false,
				Reason:  ctx.Err().Error(),
			}
		}
	}

	return Outcome{
		Elapsed: time.Since(start),
		Success: false,
		Reason:  lastReason,
	}
}

// attempt performs a single HTTP call and decodes the response body.
func (e *Executor) attempt(ctx context.Context, n int) (*SumPayload, error) {
	endpoint, err := url.JoinPath(e.baseURL, "sum")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	query := req.URL.Query()
	query.Set("n", strconv.Itoa(n))
	req.URL.RawQuery = query.Encode()

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	// Any non-success status is retryable, same as a transport error.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := gjson.GetBytes(body, "error").String()
		if reason == "" {
			reason = resp.Status
		}
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, reason)
	}

	if e.schema != nil {
		if err := e.schema.Validate(body); err != nil {
			return nil, err
		}
	}

	return decodePayload(body)
}

// decodePayload extracts the payload fields from a response body.
// gjson keeps the decode tolerant of extra fields the service may add.
func decodePayload(body []byte) (*SumPayload, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("malformed response body")
	}

	sum := gjson.GetBytes(body, "sum_of_primes")
	if !sum.Exists() {
		return nil, fmt.Errorf("malformed response body: missing sum_of_primes")
	}

	return &SumPayload{
		N:           gjson.GetBytes(body, "n").Int(),
		SumOfPrimes: sum.Int(),
		ComputeTime: gjson.GetBytes(body, "time").Float(),
	}, nil
}
