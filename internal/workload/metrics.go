package workload

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Derived reporting metrics. These are pure functions over a sequence of
// summaries; the coordinator does not own them.

// Speedups returns each level's speedup relative to the first level's
// wall time. The first element is 1 by construction. Levels with a
// non-positive wall time report 0.
func Speedups(summaries []Summary) []float64 {
	speedups := make([]float64, len(summaries))
	if len(summaries) == 0 {
		return speedups
	}

	baseline := summaries[0].WallTime
	for i, s := range summaries {
		if s.WallTime > 0 {
			speedups[i] = float64(baseline) / float64(s.WallTime)
		}
	}
	return speedups
}

// SuccessRates returns the success rate of each level in sweep order.
func SuccessRates(summaries []Summary) []float64 {
	rates := make([]float64, len(summaries))
	for i, s := range summaries {
		rates[i] = s.SuccessRate
	}
	return rates
}

// LatencyStats describes the latency distribution of one level's
// successful calls.
type LatencyStats struct {
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
	Mean   time.Duration `json:"mean"`
	StdDev time.Duration `json:"stdDev"`
	P50    time.Duration `json:"p50"`
	P90    time.Duration `json:"p90"`
	P95    time.Duration `json:"p95"`
	P99    time.Duration `json:"p99"`
	Count  int64         `json:"count"`
}

// Histogram bounds: 1 microsecond to 1 hour, 3 significant figures.
const (
	histogramMin     = int64(1)
	histogramMax     = int64(3600000000)
	histogramSigFigs = 3
)

// DistributionStats computes latency distribution statistics for one
// level using an HDR histogram. ok is false when the level has no
// successful calls, so charts can render an explicit gap instead of a
// false zero.
func DistributionStats(s Summary) (LatencyStats, bool) {
	if len(s.Latencies) == 0 {
		return LatencyStats{}, false
	}

	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
	for _, l := range s.Latencies {
		micros := l.Microseconds()
		if micros < histogramMin {
			micros = histogramMin
		}
		if micros > histogramMax {
			micros = histogramMax
		}
		hist.RecordValue(micros)
	}

	return LatencyStats{
		Min:    time.Duration(hist.Min()) * time.Microsecond,
		Max:    time.Duration(hist.Max()) * time.Microsecond,
		Mean:   time.Duration(hist.Mean()) * time.Microsecond,
		StdDev: time.Duration(hist.StdDev()) * time.Microsecond,
		P50:    time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:    time.Duration(hist.ValueAtQuantile(90)) * time.Microsecond,
		P95:    time.Duration(hist.ValueAtQuantile(95)) * time.Microsecond,
		P99:    time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond,
		Count:  hist.TotalCount(),
	}, true
}
