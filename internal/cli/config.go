package cli

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	vatify "github.com/vatify/client-go"
)

// fileConfig is the optional CLI config file, lowest in the resolution
// order (flag > environment > file).
type fileConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"` // duration string, e.g. "10s"
}

// timeout parses the file's timeout, zero when absent or malformed.
func (c fileConfig) timeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// configPath returns the config file location, honoring the platform
// config dir ($XDG_CONFIG_HOME on Linux).
func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vatify", "config.yaml")
}

// loadFileConfig reads the config file if present. A missing or unreadable
// file yields an empty config; the CLI works without one.
func loadFileConfig() fileConfig {
	var cfg fileConfig
	path := configPath()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	_ = yaml.Unmarshal(data, &cfg)
	return cfg
}

// apiKeyFallback returns the file's API key only when the environment does
// not already provide one, keeping the flag > env > file order intact.
func (c fileConfig) apiKeyFallback() string {
	if os.Getenv(vatify.EnvAPIKey) != "" {
		return ""
	}
	return c.APIKey
}
