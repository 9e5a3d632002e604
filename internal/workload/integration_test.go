package workload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/primebench/primebench/internal/client"
)

// End-to-end: real executor against a deterministic 10ms target.
func TestSweep_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"n": 100, "sum_of_primes": 1060, "time": 0.01}`))
	}))
	defer server.Close()

	executor := client.NewExecutor(
		client.WithBaseURL(server.URL),
		client.WithTimeout(5*time.Second),
		client.WithMaxRetries(3),
		client.WithRetryDelay(time.Millisecond),
	)

	cfg := testConfig(1, 10)
	cfg.BaseURL = server.URL
	coordinator := NewCoordinator(executor, cfg)

	summaries := coordinator.RunSweep(context.Background())

	if len(summaries) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(summaries))
	}

	level10 := summaries[1]
	if level10.Concurrency != 10 {
		t.Fatalf("Expected level 10 second, got %d", level10.Concurrency)
	}
	if level10.SuccessRate != 1.0 {
		t.Errorf("Expected success rate 1.0, got %f", level10.SuccessRate)
	}
	if len(level10.Latencies) != 10 {
		t.Errorf("Expected 10 latencies, got %d", len(level10.Latencies))
	}

	// All 10 calls run concurrently against a 10ms handler; the batch
	// should finish well under the serial 100ms, allowing generous
	// scheduling overhead.
	if level10.WallTime > 500*time.Millisecond {
		t.Errorf("Wall time suggests calls were serialized: %v", level10.WallTime)
	}

	expectedThroughput := 10 / level10.WallTime.Seconds()
	if diff := level10.Throughput - expectedThroughput; diff > 0.01 || diff < -0.01 {
		t.Errorf("Throughput %f does not match 10/wall=%f", level10.Throughput, expectedThroughput)
	}
}

// A target that always fails must still produce a summary per level.
func TestSweep_EndToEnd_AllFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": "upstream down"}`))
	}))
	defer server.Close()

	executor := client.NewExecutor(
		client.WithBaseURL(server.URL),
		client.WithMaxRetries(2),
		client.WithRetryDelay(time.Millisecond),
	)

	cfg := testConfig(5)
	cfg.BaseURL = server.URL
	coordinator := NewCoordinator(executor, cfg)

	summary := coordinator.RunLevel(context.Background(), 5)

	if summary.SuccessRate != 0 {
		t.Errorf("Expected success rate 0, got %f", summary.SuccessRate)
	}
	if len(summary.Latencies) != 0 {
		t.Errorf("Expected no latencies, got %d", len(summary.Latencies))
	}
	if _, ok := summary.MeanLatency(); ok {
		t.Error("Expected no-data mean latency")
	}
}
