package predict

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// PredictPath is the service route for predictions.
const PredictPath = "/api/predict"

// Config holds prediction client configuration.
type Config struct {
	// BaseURL is the scheme and host of the prediction service.
	BaseURL string

	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration
}

// DefaultConfig returns a Config pointing at a locally running service.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://127.0.0.1:5000",
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if u := os.Getenv("HEARTRISK_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("HEARTRISK_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return cfg, fmt.Errorf("parse HEARTRISK_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Validate checks that the base URL is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API URL %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid API URL %q: missing host", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// Endpoint returns the full URL of the predict route.
func (c Config) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + PredictPath
}
