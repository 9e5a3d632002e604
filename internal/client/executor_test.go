package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestExecutor_Execute_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sum" {
			t.Errorf("Expected path /sum, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("n") != "100" {
			t.Errorf("Expected n=100, got %s", r.URL.Query().Get("n"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"n": 100, "sum_of_primes": 1060, "time": 0.001}`))
	}))
	defer server.Close()

	executor := NewExecutor(
		WithBaseURL(server.URL),
		WithTimeout(5*time.Second),
	)

	outcome := executor.Execute(context.Background(), 100)

	if !outcome.Success {
		t.Fatalf("Expected success, got failure: %s", outcome.Reason)
	}
	if outcome.Payload == nil {
		t.Fatal("Expected payload on success")
	}
	if outcome.Reason != "" {
		t.Errorf("Expected empty reason on success, got %q", outcome.Reason)
	}
	if outcome.Payload.SumOfPrimes != 1060 {
		t.Errorf("Expected sum_of_primes 1060, got %d", outcome.Payload.SumOfPrimes)
	}
	if outcome.Payload.N != 100 {
		t.Errorf("Expected n 100, got %d", outcome.Payload.N)
	}
	if outcome.Elapsed <= 0 {
		t.Error("Expected positive elapsed time")
	}
}

func TestExecutor_Execute_RetryExhaustion(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "boom"}`))
	}))
	defer server.Close()

	delay := 20 * time.Millisecond
	executor := NewExecutor(
		WithBaseURL(server.URL),
		WithMaxRetries(3),
		WithRetryDelay(delay),
	)

	outcome := executor.Execute(context.Background(), 100)

	if outcome.Success {
		t.Fatal("Expected failure after retry exhaustion")
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("Expected exactly 3 attempts, got %d", got)
	}
	if outcome.Payload != nil {
		t.Error("Expected nil payload on failure")
	}
	if outcome.Reason == "" {
		t.Error("Expected a failure reason")
	}
	// Two inter-retry delays between three attempts.
	if outcome.Elapsed < 2*delay {
		t.Errorf("Expected elapsed >= %v, got %v", 2*delay, outcome.Elapsed)
	}
}

func TestExecutor_Execute_SucceedsWithinRetryBudget(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"n": 10, "sum_of_primes": 17, "time": 0.0001}`))
	}))
	defer server.Close()

	executor := NewExecutor(
		WithBaseURL(server.URL),
		WithMaxRetries(3),
		WithRetryDelay(10*time.Millisecond),
	)

	outcome := executor.Execute(context.Background(), 10)

	if !outcome.Success {
		t.Fatalf("Expected success on third attempt, got: %s", outcome.Reason)
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("Expected 3 attempts, got %d", got)
	}
	// Elapsed covers the whole attempt sequence, retry delays included.
	if outcome.Elapsed < 20*time.Millisecond {
		t.Errorf("Expected elapsed to include retry delays, got %v", outcome.Elapsed)
	}
}

func TestExecutor_Execute_ConnectionRefused(t *testing.T) {
	// Grab a port that is not listening.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	executor := NewExecutor(
		WithBaseURL(url),
		WithMaxRetries(2),
		WithRetryDelay(time.Millisecond),
	)

	outcome := executor.Execute(context.Background(), 100)

	if outcome.Success {
		t.Fatal("Expected failure for refused connection")
	}
	if outcome.Reason == "" {
		t.Error("Expected a failure reason describing the transport error")
	}
}

func TestExecutor_Execute_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	executor := NewExecutor(
		WithBaseURL(server.URL),
		WithMaxRetries(2),
		WithRetryDelay(time.Millisecond),
	)

	outcome := executor.Execute(context.Background(), 100)

	if outcome.Success {
		t.Fatal("Expected failure for malformed body")
	}
}

func TestExecutor_Execute_MissingField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"n": 100, "time": 0.001}`))
	}))
	defer server.Close()

	executor := NewExecutor(
		WithBaseURL(server.URL),
		WithMaxRetries(1),
	)

	outcome := executor.Execute(context.Background(), 100)

	if outcome.Success {
		t.Fatal("Expected failure when sum_of_primes is missing")
	}
}

func TestExecutor_Execute_SchemaValidation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// time is a string, violating the schema
		w.Write([]byte(`{"n": 100, "sum_of_primes": 1060, "time": "fast"}`))
	}))
	defer server.Close()

	executor := NewExecutor(
		WithBaseURL(server.URL),
		WithMaxRetries(1),
		WithResponseValidation(),
	)

	outcome := executor.Execute(context.Background(), 100)

	if outcome.Success {
		t.Fatal("Expected schema validation failure")
	}

	// Without validation the tolerant gjson decode accepts the body.
	lenient := NewExecutor(
		WithBaseURL(server.URL),
		WithMaxRetries(1),
	)
	if outcome := lenient.Execute(context.Background(), 100); !outcome.Success {
		t.Fatalf("Expected success without schema validation, got: %s", outcome.Reason)
	}
}

func TestExecutor_Execute_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"n": 100, "sum_of_primes": 1060, "time": 0.001}`))
	}))
	defer server.Close()

	executor := NewExecutor(
		WithBaseURL(server.URL),
		WithTimeout(20*time.Millisecond),
		WithMaxRetries(2),
		WithRetryDelay(time.Millisecond),
	)

	outcome := executor.Execute(context.Background(), 100)

	if outcome.Success {
		t.Fatal("Expected failure for timed-out request")
	}
}

// Exactly one of payload/reason must be populated, gated by Success.
func TestOutcome_Exclusivity(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"n": 10, "sum_of_primes": 17, "time": 0.0001}`))
	}))
	defer ok.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Invalid input"}`))
	}))
	defer bad.Close()

	succeeded := NewExecutor(WithBaseURL(ok.URL), WithMaxRetries(1)).Execute(context.Background(), 10)
	if !(succeeded.Success && succeeded.Payload != nil && succeeded.Reason == "") {
		t.Errorf("Exclusivity violated for success: %+v", succeeded)
	}

	failed := NewExecutor(WithBaseURL(bad.URL), WithMaxRetries(1)).Execute(context.Background(), 10)
	if !(!failed.Success && failed.Payload == nil && failed.Reason != "") {
		t.Errorf("Exclusivity violated for failure: %+v", failed)
	}
}
