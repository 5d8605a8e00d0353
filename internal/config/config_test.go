package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "networks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
networks:
  finney:
    endpoint: https://lite.chain.opentensor.ai
  local:
    endpoint: http://127.0.0.1:9944
defaults:
  timeout: 10s
  max_retries: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Defaults.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.Defaults.Timeout)
	}

	endpoint, err := cfg.Endpoint("finney")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if endpoint != "https://lite.chain.opentensor.ai" {
		t.Errorf("endpoint = %q", endpoint)
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("SUBTENSOR_URL", "https://example.com:9933")

	path := writeConfig(t, `
networks:
  custom:
    endpoint: ${SUBTENSOR_URL}
defaults:
  timeout: 5s
  max_retries: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	endpoint, _ := cfg.Endpoint("custom")
	if endpoint != "https://example.com:9933" {
		t.Errorf("endpoint = %q, want expanded env var", endpoint)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing timeout", "networks:\n  a:\n    endpoint: https://x.io\ndefaults:\n  max_retries: 1\n"},
		{"negative retries", "networks:\n  a:\n    endpoint: https://x.io\ndefaults:\n  timeout: 5s\n  max_retries: -1\n"},
		{"no networks", "networks: {}\ndefaults:\n  timeout: 5s\n  max_retries: 0\n"},
		{"empty endpoint", "networks:\n  a:\n    endpoint: \"\"\ndefaults:\n  timeout: 5s\n  max_retries: 0\n"},
		{"bad scheme", "networks:\n  a:\n    endpoint: ftp://x.io\ndefaults:\n  timeout: 5s\n  max_retries: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.yaml)
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want validation error")
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("built-in config invalid: %v", err)
	}

	for _, network := range []string{"finney", "test", "local"} {
		if _, err := cfg.Endpoint(network); err != nil {
			t.Errorf("missing built-in network %q", network)
		}
	}

	if _, err := cfg.Endpoint("mainnet"); err == nil {
		t.Error("Endpoint(mainnet) succeeded, want unknown network error")
	}
}
