package config

import (
	"fmt"
	"net/url"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks a Run configuration and returns all problems found.
// Validation is a fail-fast step performed before any request is issued.
func Validate(cfg *Run) []ValidationError {
	var errors []ValidationError

	if cfg.BaseURL == "" {
		errors = append(errors, ValidationError{
			Path:    "baseUrl",
			Message: "baseUrl is required",
		})
	} else if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Path:    "baseUrl",
			Message: fmt.Sprintf("invalid URL: %s", cfg.BaseURL),
		})
	}

	if cfg.N < 0 {
		errors = append(errors, ValidationError{
			Path:    "n",
			Message: "n must be non-negative",
		})
	}

	if len(cfg.Levels) == 0 {
		errors = append(errors, ValidationError{
			Path:    "levels",
			Message: "at least one concurrency level is required",
		})
	}

	for i, level := range cfg.Levels {
		if level < 1 {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("levels[%d]", i),
				Message: fmt.Sprintf("concurrency level must be >= 1, got %d", level),
			})
		}
	}

	if cfg.Timeout.Std() <= 0 {
		errors = append(errors, ValidationError{
			Path:    "timeout",
			Message: "timeout must be positive",
		})
	}

	if cfg.MaxRetries < 1 {
		errors = append(errors, ValidationError{
			Path:    "maxRetries",
			Message: fmt.Sprintf("maxRetries must be >= 1, got %d", cfg.MaxRetries),
		})
	}

	if cfg.RetryDelay.Std() < 0 {
		errors = append(errors, ValidationError{
			Path:    "retryDelay",
			Message: "retryDelay must not be negative",
		})
	}

	return errors
}
