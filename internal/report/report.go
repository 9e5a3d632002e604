// Package report generates JSON and HTML reports from a sweep's summaries.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/primebench/primebench/internal/config"
	"github.com/primebench/primebench/internal/workload"
)

// SweepResult bundles one complete sweep run for reporting.
type SweepResult struct {
	// RunID identifies this run in report filenames and headers
	RunID string `json:"runId"`

	// Config is the run configuration the sweep executed with
	Config config.Run `json:"config"`

	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`

	// Summaries holds one entry per concurrency level, in sweep order
	Summaries []workload.Summary `json:"summaries"`
}

// LevelPoint is one concurrency level flattened for chart rendering.
// Latency fields are null for levels with no successful calls so charts
// show explicit gaps instead of false zeros.
type LevelPoint struct {
	Concurrency int      `json:"concurrency"`
	WallTime    float64  `json:"wallTime"`
	Throughput  float64  `json:"throughput"`
	Speedup     float64  `json:"speedup"`
	SuccessRate float64  `json:"successRate"`
	LatencyMin  *float64 `json:"latencyMin"`
	LatencyP50  *float64 `json:"latencyP50"`
	LatencyP90  *float64 `json:"latencyP90"`
	LatencyP99  *float64 `json:"latencyP99"`
	LatencyMax  *float64 `json:"latencyMax"`
}

// LevelPoints converts a result's summaries into chart-ready points.
func LevelPoints(result *SweepResult) []LevelPoint {
	speedups := workload.Speedups(result.Summaries)

	points := make([]LevelPoint, len(result.Summaries))
	for i, s := range result.Summaries {
		point := LevelPoint{
			Concurrency: s.Concurrency,
			WallTime:    s.WallTime.Seconds(),
			Throughput:  s.Throughput,
			Speedup:     speedups[i],
			SuccessRate: s.SuccessRate,
		}

		if stats, ok := workload.DistributionStats(s); ok {
			point.LatencyMin = seconds(stats.Min)
			point.LatencyP50 = seconds(stats.P50)
			point.LatencyP90 = seconds(stats.P90)
			point.LatencyP99 = seconds(stats.P99)
			point.LatencyMax = seconds(stats.Max)
		}

		points[i] = point
	}
	return points
}

func seconds(d time.Duration) *float64 {
	s := d.Seconds()
	return &s
}

// WriteJSON writes the result as indented JSON to outputPath, or to
// stdout when the path is empty.
func WriteJSON(result *SweepResult, outputPath string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing result to file: %w", err)
	}
	return nil
}
