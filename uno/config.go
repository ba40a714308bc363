package uno

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.axie.uno"
	defaultTimeout = 10 * time.Second

	envBaseURL   = "AXIE_UNO_BASE_URL"
	envTimeoutMS = "AXIE_UNO_TIMEOUT_MS"
)

// Config captures the runtime parameters required to talk to the staking API.
type Config struct {
	// BaseURL is the root of the staking API, without a trailing path.
	BaseURL string
	// Timeout bounds each request end to end.
	Timeout time.Duration
	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// DefaultConfig returns a Config pointed at the public endpoint with a
// conservative request timeout.
func DefaultConfig() Config {
	return Config{
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeout,
	}
}

// Validate ensures the base URL parses and the timeout is sane.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base URL %q must be absolute", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid Timeout: %s", c.Timeout)
	}
	return nil
}

// FromEnv builds a Config from the canonical environment variables and applies
// defaults for anything unset.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envTimeoutMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return Config{}, fmt.Errorf("invalid %s: %q", envTimeoutMS, v)
		}
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}
	return cfg, cfg.Validate()
}
