package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/primebench/primebench/internal/client"
	"github.com/primebench/primebench/internal/config"
	"github.com/primebench/primebench/internal/output"
	"github.com/primebench/primebench/internal/report"
	"github.com/primebench/primebench/internal/workload"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a concurrency sweep against a prime-sum service",
	Long: `Run the configured concurrency levels against the target service,
one level at a time, and report per-level wall time, throughput, speedup,
success rate, and latency distribution.

Config file mode:
  primebench sweep --config sweep.yaml

Quick CLI mode:
  primebench sweep --url http://localhost:5000 \
    --n 100000 \
    --levels "1,10,50,100" \
    --retries 3`,
	RunE: runSweep,
}

func runSweep(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	noColor, _ := cmd.Flags().GetBool("no-color")
	outputPath, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	htmlOutput, _ := cmd.Flags().GetBool("html")

	cfg, err := resolveConfig(cmd, configFile)
	if err != nil {
		return err
	}

	// Fail fast on bad configuration, before any request is issued.
	if validationErrors := config.Validate(cfg); len(validationErrors) > 0 {
		for _, ve := range validationErrors {
			fmt.Fprintf(os.Stderr, "config error: %s\n", ve.Error())
		}
		return fmt.Errorf("invalid configuration (%d errors)", len(validationErrors))
	}

	executor := newExecutor(cfg)
	coordinator := workload.NewCoordinator(executor, cfg)

	console := output.NewConsole(os.Stdout, noColor)
	coordinator.OnLevelComplete = console.PrintLevel

	runID := uuid.New().String()[:8]
	console.PrintRunHeader(runID, cfg)

	start := time.Now()
	summaries := coordinator.RunSweep(context.Background())
	end := time.Now()

	console.PrintSummary(summaries)

	result := &report.SweepResult{
		RunID:     runID,
		Config:    *cfg,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Summaries: summaries,
	}

	return writeReports(result, outputPath, jsonOutput, htmlOutput)
}

// resolveConfig builds the run configuration from a config file or from
// CLI flags.
func resolveConfig(cmd *cobra.Command, configFile string) (*config.Run, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		return nil, fmt.Errorf("either --config or --url is required")
	}

	n, _ := cmd.Flags().GetInt("n")
	levelsStr, _ := cmd.Flags().GetString("levels")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	retries, _ := cmd.Flags().GetInt("retries")
	retryDelay, _ := cmd.Flags().GetDuration("retry-delay")
	validate, _ := cmd.Flags().GetBool("validate-response")

	cfg := config.Default()
	cfg.BaseURL = url
	cfg.N = n
	cfg.Timeout = config.Duration(timeout)
	cfg.MaxRetries = retries
	cfg.RetryDelay = config.Duration(retryDelay)
	cfg.ValidateResponse = validate

	if levelsStr != "" {
		levels, err := parseLevels(levelsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid levels: %w", err)
		}
		cfg.Levels = levels
	}

	return &cfg, nil
}

// newExecutor builds the request executor for a run. The transport is
// sized for the largest configured level so connection churn does not
// distort high-concurrency measurements.
func newExecutor(cfg *config.Run) *client.Executor {
	maxLevel := 0
	for _, level := range cfg.Levels {
		if level > maxLevel {
			maxLevel = level
		}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = maxLevel * 2
	transport.MaxConnsPerHost = maxLevel * 2
	transport.MaxIdleConnsPerHost = maxLevel * 2

	options := []client.Option{
		client.WithBaseURL(cfg.BaseURL),
		client.WithTimeout(cfg.Timeout.Std()),
		client.WithMaxRetries(cfg.MaxRetries),
		client.WithRetryDelay(cfg.RetryDelay.Std()),
		client.WithTransport(transport),
	}
	if cfg.ValidateResponse {
		options = append(options, client.WithResponseValidation())
	}

	return client.NewExecutor(options...)
}

// parseLevels parses a comma-separated concurrency list like "1,10,50".
func parseLevels(levelsStr string) ([]int, error) {
	var levels []int

	for i, part := range strings.Split(levelsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		level, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("level %d: invalid value %q", i+1, part)
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("at least one level is required")
	}

	return levels, nil
}

// writeReports writes JSON and/or HTML reports based on flags and the
// output path extension.
func writeReports(result *report.SweepResult, outputPath string, jsonOutput, htmlOutput bool) error {
	isHTML := htmlOutput || strings.HasSuffix(strings.ToLower(outputPath), ".html")
	isJSON := jsonOutput || strings.HasSuffix(strings.ToLower(outputPath), ".json")

	if isJSON {
		if err := report.WriteJSON(result, outputPath); err != nil {
			return err
		}
		if outputPath != "" {
			fmt.Printf("Results written to: %s\n", outputPath)
		}
		return nil
	}

	if isHTML {
		path := outputPath
		if path == "" {
			path = defaultHTMLPath(result.RunID)
		}
		if err := report.GenerateHTML(result, path); err != nil {
			return err
		}
		fmt.Printf("Report: %s\n", path)
		return nil
	}

	// Output path without a recognized extension gets both formats.
	if outputPath != "" {
		if err := report.GenerateHTML(result, outputPath+".html"); err != nil {
			return err
		}
		if err := report.WriteJSON(result, outputPath+".json"); err != nil {
			return err
		}
		fmt.Printf("Reports: %s.html, %s.json\n", outputPath, outputPath)
	}

	return nil
}

// defaultHTMLPath creates a default HTML report path from the run ID.
func defaultHTMLPath(runID string) string {
	timestamp := time.Now().Format("20060102-150405")
	return fmt.Sprintf("sweep-report-%s-%s.html", runID, timestamp)
}

func init() {
	sweepCmd.Flags().StringP("config", "c", "", "Configuration file (YAML or JSON)")
	sweepCmd.Flags().String("url", "", "Target service root URL (alternative to --config)")
	sweepCmd.Flags().Int("n", config.DefaultN, "Fixed n parameter sent on every call")
	sweepCmd.Flags().String("levels", "", "Concurrency levels, e.g. '1,10,50,100'")
	sweepCmd.Flags().DurationP("timeout", "t", config.DefaultTimeout, "Per-attempt HTTP timeout")
	sweepCmd.Flags().Int("retries", config.DefaultMaxRetries, "Total attempts per call")
	sweepCmd.Flags().Duration("retry-delay", config.DefaultRetryDelay, "Fixed delay between attempts")
	sweepCmd.Flags().Bool("validate-response", false, "Validate response bodies against the service schema")
	sweepCmd.Flags().StringP("output", "o", "", "Output file for the report (.json or .html)")
	sweepCmd.Flags().Bool("json", false, "Output results as JSON")
	sweepCmd.Flags().Bool("html", false, "Generate an HTML report")
	sweepCmd.Flags().Bool("no-color", false, "Disable colored output")
}
