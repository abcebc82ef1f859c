package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/kelsos/oklink-go/client"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "OKLINK"

// Config holds all application configuration
// Environment variables are read with the OKLINK_ prefix
type Config struct {
	// API settings
	APIKey  string `envconfig:"API_KEY"`
	BaseURL string `envconfig:"BASE_URL" default:"https://www.oklink.com"`
	Chain   string `envconfig:"CHAIN" default:"KLAYTN"`

	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`

	// Dump requests and responses
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Load reads the configuration from the environment, after filling it from
// any .env file
func Load() (*Config, error) {
	loadDotEnv(dotEnvFiles()...)

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API key cannot be empty, set %s_API_KEY or --api-key", EnvPrefix)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base URL must be an absolute http(s) URL, got: %q", c.BaseURL)
	}

	if c.Chain == "" {
		return fmt.Errorf("chain short name cannot be empty")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	return nil
}

// ClientConfig converts the configuration into client settings
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		APIKey:         c.APIKey,
		BaseURL:        c.BaseURL,
		ChainShortName: c.Chain,
		Timeout:        c.Timeout,
	}
}
