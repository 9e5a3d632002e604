package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/primebench/primebench/internal/config"
	"github.com/primebench/primebench/internal/workload"
)

func TestConsole_PrintRunHeader(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, true)

	cfg := config.Default()
	cfg.BaseURL = "http://localhost:5000"
	cfg.Levels = []int{1, 10}

	console.PrintRunHeader("abcd1234", &cfg)

	out := buf.String()
	for _, want := range []string{"abcd1234", "http://localhost:5000", "1, 10", "30s"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected header to contain %q, got:\n%s", want, out)
		}
	}
}

func TestConsole_PrintLevel(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, true)

	console.PrintLevel(workload.Summary{
		Concurrency: 10,
		WallTime:    250 * time.Millisecond,
		Throughput:  40,
		SuccessRate: 1,
		Latencies:   []time.Duration{20 * time.Millisecond},
	})

	out := buf.String()
	if !strings.Contains(out, "10 requests") {
		t.Errorf("Expected request count in output: %s", out)
	}
	if !strings.Contains(out, "100.0%") {
		t.Errorf("Expected success rate in output: %s", out)
	}
}

func TestConsole_PrintLevel_NoData(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, true)

	console.PrintLevel(workload.Summary{
		Concurrency: 5,
		WallTime:    time.Second,
		SuccessRate: 0,
		Latencies:   []time.Duration{},
	})

	if !strings.Contains(buf.String(), "no data") {
		t.Errorf("Expected explicit 'no data' for all-failure level: %s", buf.String())
	}
}

func TestConsole_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, true)

	summaries := []workload.Summary{
		{
			Concurrency: 1,
			WallTime:    time.Second,
			Throughput:  1,
			SuccessRate: 1,
			Latencies:   []time.Duration{time.Second},
		},
		{
			Concurrency: 10,
			WallTime:    2 * time.Second,
			Throughput:  5,
			SuccessRate: 0.5,
			Latencies:   []time.Duration{time.Second, time.Second, time.Second, time.Second, time.Second},
		},
	}

	console.PrintSummary(summaries)

	out := buf.String()
	if !strings.Contains(out, "Sweep Summary") {
		t.Errorf("Expected summary header: %s", out)
	}
	if !strings.Contains(out, "speedup") {
		t.Errorf("Expected speedup column: %s", out)
	}
	if !strings.Contains(out, "0.50x") {
		t.Errorf("Expected second-level speedup 0.50x: %s", out)
	}
}

func TestFormatLatency(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{500 * time.Microsecond, "500µs"},
		{5 * time.Millisecond, "5.00ms"},
		{50 * time.Millisecond, "50.0ms"},
		{2 * time.Second, "2.00s"},
		{30 * time.Second, "30.0s"},
	}

	for _, tc := range cases {
		if got := formatLatency(tc.in); got != tc.want {
			t.Errorf("formatLatency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
