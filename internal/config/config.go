// Package config provides YAML configuration loading and validation
// for the network endpoints, with environment variable expansion and
// built-in defaults for the public networks.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration: the set of known networks and the
// client defaults that apply to all of them.
type Config struct {
	Networks map[string]Network `yaml:"networks"` // Keyed by network name (e.g., "finney")
	Defaults Defaults           `yaml:"defaults"`
}

// Network is one subtensor network definition.
type Network struct {
	Endpoint string `yaml:"endpoint"` // JSON-RPC endpoint URL (supports ${VAR} env expansion)
}

// Defaults contains client settings shared by all networks.
type Defaults struct {
	Timeout    time.Duration `yaml:"timeout"`     // Per-request HTTP timeout (e.g., "30s")
	MaxRetries int           `yaml:"max_retries"` // Retry attempts per call (0 = no retries)
}

// Default returns the built-in configuration used when no config file
// is present: the three public networks and conservative client
// settings.
func Default() *Config {
	return &Config{
		Networks: map[string]Network{
			"finney": {Endpoint: "https://lite.chain.opentensor.ai"},
			"test":   {Endpoint: "https://test.chain.opentensor.ai"},
			"local":  {Endpoint: "http://127.0.0.1:9944"},
		},
		Defaults: Defaults{
			Timeout:    30 * time.Second,
			MaxRetries: 2,
		},
	}
}

// Endpoint resolves the endpoint URL for a named network.
func (c *Config) Endpoint(network string) (string, error) {
	n, ok := c.Networks[network]
	if !ok {
		return "", fmt.Errorf("unknown network %q", network)
	}
	return n.Endpoint, nil
}

// Validate checks the configuration. Strict validation, no silent
// fixups: every configured network must carry a usable endpoint.
func (c *Config) Validate() error {
	if c.Defaults.Timeout <= 0 {
		return fmt.Errorf("defaults.timeout is required")
	}
	if c.Defaults.MaxRetries < 0 {
		return fmt.Errorf("defaults.max_retries must be >= 0")
	}
	if len(c.Networks) == 0 {
		return fmt.Errorf("at least one network is required")
	}

	for name, n := range c.Networks {
		if n.Endpoint == "" {
			return fmt.Errorf("network %s: endpoint is required", name)
		}

		u, err := url.Parse(n.Endpoint)
		if err != nil {
			return fmt.Errorf("network %s: invalid endpoint: %w", name, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("network %s: invalid endpoint (missing scheme or host)", name)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("network %s: invalid endpoint scheme %q (expected http or https)", name, u.Scheme)
		}
	}

	return nil
}

// Load reads and parses a YAML configuration file, expanding ${VAR}
// environment references and validating the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Allow endpoints like: endpoint: ${SUBTENSOR_URL}
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnv reads KEY=VALUE pairs from a .env file in the current
// working directory and sets them with os.Setenv. A missing .env file
// is not an error; system environment variables still apply.
func LoadEnv() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			value = strings.Trim(value, `"'`)
			os.Setenv(key, value)
		}
	}
}
