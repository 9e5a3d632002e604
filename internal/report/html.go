package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/primebench/primebench/internal/workload"
)

// htmlData contains everything the HTML template needs to render.
type htmlData struct {
	*SweepResult
	LevelsJSON template.JS
}

// GenerateHTML renders the sweep report and writes it to a file.
func GenerateHTML(result *SweepResult, outputPath string) error {
	html, err := GenerateHTMLString(result)
	if err != nil {
		return fmt.Errorf("failed to generate HTML: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	return nil
}

// GenerateHTMLString renders the sweep report and returns it as a string.
func GenerateHTMLString(result *SweepResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result cannot be nil")
	}

	tmpl, err := template.New("report").Funcs(templateFuncs()).Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	levelsJSON, err := json.Marshal(LevelPoints(result))
	if err != nil {
		return "", fmt.Errorf("failed to convert level points: %w", err)
	}

	data := htmlData{
		SweepResult: result,
		LevelsJSON:  template.JS(levelsJSON),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// templateFuncs returns the template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDuration": formatDuration,
		"percent":        percent,
		"meanLatency":    meanLatency,
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if secs == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm %ds", mins, secs)
}

// percent formats a [0,1] fraction as a percentage.
func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// meanLatency renders a summary's mean latency, or "no data" for levels
// with no successful calls.
func meanLatency(s workload.Summary) string {
	m, ok := s.MeanLatency()
	if !ok {
		return "no data"
	}
	return formatDuration(m)
}
