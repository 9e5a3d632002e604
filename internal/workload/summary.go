package workload

import (
	"encoding/json"
	"time"
)

// Summary is the aggregate result of one measured batch at a single
// concurrency level. It is immutable once created.
type Summary struct {
	// Concurrency is the configured number of simultaneous calls
	Concurrency int

	// WallTime spans from dispatch of the first call to completion of
	// the last, for the whole batch
	WallTime time.Duration

	// Throughput is Concurrency / WallTime in requests per second,
	// 0 when WallTime is not positive. Failed calls stay in the
	// denominator; only latency stats exclude them.
	Throughput float64

	// SuccessRate is the fraction of outcomes that succeeded, in [0,1],
	// with Concurrency as the denominator
	SuccessRate float64

	// Latencies holds the elapsed time of each successful outcome.
	// Completion order, no semantic ordering; never nil.
	Latencies []time.Duration
}

// MeanLatency returns the arithmetic mean of the successful-call latencies.
// ok is false when the level produced no successes: the absence of data is
// explicit so downstream comparisons are not polluted by false zeros.
func (s Summary) MeanLatency() (time.Duration, bool) {
	if len(s.Latencies) == 0 {
		return 0, false
	}

	var total time.Duration
	for _, l := range s.Latencies {
		total += l
	}
	return total / time.Duration(len(s.Latencies)), true
}

// MarshalJSON emits the summary with seconds-based floats and an explicit
// null meanLatency when no call succeeded.
func (s Summary) MarshalJSON() ([]byte, error) {
	latencies := make([]float64, len(s.Latencies))
	for i, l := range s.Latencies {
		latencies[i] = l.Seconds()
	}

	var mean *float64
	if m, ok := s.MeanLatency(); ok {
		secs := m.Seconds()
		mean = &secs
	}

	return json.Marshal(struct {
		Concurrency int       `json:"concurrency"`
		WallTime    float64   `json:"wallTime"`
		Throughput  float64   `json:"throughput"`
		SuccessRate float64   `json:"successRate"`
		MeanLatency *float64  `json:"meanLatency"`
		Latencies   []float64 `json:"latencies"`
	}{
		Concurrency: s.Concurrency,
		WallTime:    s.WallTime.Seconds(),
		Throughput:  s.Throughput,
		SuccessRate: s.SuccessRate,
		MeanLatency: mean,
		Latencies:   latencies,
	})
}
