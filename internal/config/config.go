// Package config provides loading and validation of sweep run configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied when a configuration field is omitted. The default
// sweep matches the levels used for scaling studies against the prime-sum
// service.
var defaultLevels = []int{1, 10, 50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}

const (
	DefaultN          = 100000
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// Run is the configuration for one sweep run. It is an explicit value passed
// into the coordinator; there is no process-wide mutable settings state.
type Run struct {
	// BaseURL is the target service root URL
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// N is the fixed parameter sent on every call in the sweep
	N int `json:"n" yaml:"n"`

	// Levels is the ordered list of concurrency values to sweep
	Levels []int `json:"levels" yaml:"levels"`

	// Timeout is the maximum wait per HTTP attempt
	Timeout Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the total number of attempts per call before a
	// failure is declared
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`

	// RetryDelay is the fixed delay between attempts. There is no jitter
	// or backoff growth: a consistent policy keeps latency comparable
	// across levels, which matters more here than retry efficiency.
	RetryDelay Duration `json:"retryDelay" yaml:"retryDelay"`

	// ValidateResponse enables JSON Schema validation of response bodies
	ValidateResponse bool `json:"validateResponse,omitempty" yaml:"validateResponse,omitempty"`
}

// Default returns a Run with all defaults applied and no target URL.
func Default() Run {
	return Run{
		N:          DefaultN,
		Levels:     append([]int(nil), defaultLevels...),
		Timeout:    Duration(DefaultTimeout),
		MaxRetries: DefaultMaxRetries,
		RetryDelay: Duration(DefaultRetryDelay),
	}
}

// Load reads a Run configuration from a YAML or JSON file, chosen by
// extension. Omitted fields get defaults; validation is a separate step.
func Load(path string) (*Run, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	default:
		// Try YAML first (it is a superset of JSON for our purposes)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	return &cfg, nil
}

// Duration wraps time.Duration so config files can use human-readable
// values like "30s" or "1.5m" in both YAML and JSON.
type Duration time.Duration

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the human-readable form.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalYAML parses a duration from a YAML scalar.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalJSON parses a duration from a JSON string or a number of
// nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
	case float64:
		*d = Duration(time.Duration(v))
	default:
		return fmt.Errorf("invalid duration value: %v", raw)
	}
	return nil
}

// MarshalJSON emits the duration as a human-readable string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// MarshalYAML emits the duration as a human-readable string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
