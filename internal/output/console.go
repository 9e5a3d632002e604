// Package output renders sweep progress and results to the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/primebench/primebench/internal/config"
	"github.com/primebench/primebench/internal/workload"
)

// Console writes human-readable sweep output.
type Console struct {
	w       io.Writer
	noColor bool

	scheme *ColorScheme
}

// NewConsole creates a console writer. Color is disabled when noColor is
// set or when the writer is not a TTY.
func NewConsole(w io.Writer, noColor bool) *Console {
	if !noColor {
		if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			noColor = true
		}
	}

	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}

	return &Console{
		w:       w,
		noColor: noColor,
		scheme:  scheme,
	}
}

// PrintRunHeader prints the sweep parameters before the first level runs.
func (c *Console) PrintRunHeader(runID string, cfg *config.Run) {
	fmt.Fprintln(c.w, strings.Repeat("=", 60))
	fmt.Fprintf(c.w, " Prime-sum sweep %s\n", c.scheme.Highlight.Sprint(runID))
	fmt.Fprintln(c.w, strings.Repeat("=", 60))
	fmt.Fprintf(c.w, "  Target:      %s\n", c.scheme.URL.Sprint(cfg.BaseURL))
	fmt.Fprintf(c.w, "  N:           %d\n", cfg.N)
	fmt.Fprintf(c.w, "  Levels:      %s\n", formatLevels(cfg.Levels))
	fmt.Fprintf(c.w, "  Timeout:     %s\n", cfg.Timeout)
	fmt.Fprintf(c.w, "  Max retries: %d (fixed %s delay)\n", cfg.MaxRetries, cfg.RetryDelay)
	fmt.Fprintln(c.w)
}

// PrintLevel prints a one-line progress report after a level completes.
func (c *Console) PrintLevel(s workload.Summary) {
	icon := SuccessIcon(c.noColor)
	if s.SuccessRate < 1 {
		icon = WarningIcon(c.noColor)
	}
	if s.SuccessRate == 0 {
		icon = ErrorIcon(c.noColor)
	}

	mean := "no data"
	if m, ok := s.MeanLatency(); ok {
		mean = formatLatency(m)
	}

	fmt.Fprintf(c.w, "%s %4d requests  wall %-9s  %8.2f req/s  success %5.1f%%  mean latency %s\n",
		icon,
		s.Concurrency,
		formatLatency(s.WallTime),
		s.Throughput,
		s.SuccessRate*100,
		mean,
	)
}

// PrintSummary prints the final per-level table with derived metrics.
func (c *Console) PrintSummary(summaries []workload.Summary) {
	speedups := workload.Speedups(summaries)

	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, "─── Sweep Summary "+strings.Repeat("─", 42))
	fmt.Fprintf(c.w, "  %6s  %10s  %10s  %8s  %8s  %10s  %10s\n",
		"conc", "wall", "req/s", "speedup", "success", "p50", "p99")

	for i, s := range summaries {
		stats, ok := workload.DistributionStats(s)

		p50, p99 := "-", "-"
		if ok {
			p50 = formatLatency(stats.P50)
			p99 = formatLatency(stats.P99)
		}

		rate := fmt.Sprintf("%.1f%%", s.SuccessRate*100)
		switch {
		case s.SuccessRate == 1:
			rate = c.scheme.StatusOK.Sprint(rate)
		case s.SuccessRate == 0:
			rate = c.scheme.StatusError.Sprint(rate)
		default:
			rate = c.scheme.StatusWarn.Sprint(rate)
		}

		fmt.Fprintf(c.w, "  %6d  %10s  %10.2f  %7.2fx  %8s  %10s  %10s\n",
			s.Concurrency,
			formatLatency(s.WallTime),
			s.Throughput,
			speedups[i],
			rate,
			p50,
			p99,
		)
	}
	fmt.Fprintln(c.w)
}

// formatLevels renders a level list compactly.
func formatLevels(levels []int) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return strings.Join(parts, ", ")
}

// formatLatency formats a duration in a human-readable way.
func formatLatency(d time.Duration) string {
	if d == 0 {
		return "0"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		ms := float64(d.Microseconds()) / 1000.0
		if ms < 10 {
			return fmt.Sprintf("%.2fms", ms)
		}
		return fmt.Sprintf("%.1fms", ms)
	}
	s := d.Seconds()
	if s < 10 {
		return fmt.Sprintf("%.2fs", s)
	}
	return fmt.Sprintf("%.1fs", s)
}
