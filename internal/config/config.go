// Package config loads the optional stratdex YAML file
package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/strat-dex/internal/clients/stratdex"
	"github.com/KirkDiggler/strat-dex/internal/entities/dex"
	"github.com/KirkDiggler/strat-dex/internal/errors"
)

// Config is the complete file configuration. Zero values mean "use the
// component default".
type Config struct {
	Client     ClientConfig     `yaml:"client"`
	Randomizer RandomizerConfig `yaml:"randomizer"`
}

// ClientConfig configures the dex client
type ClientConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// RandomizerConfig holds randomizer defaults. Generation is a two letter
// code such as "sv"; empty means a random generation.
type RandomizerConfig struct {
	MaxAttempts int    `yaml:"max_attempts"`
	Generation  string `yaml:"generation"`
	Format      string `yaml:"format"`
}

// Load reads the file at path. An empty path returns an empty Config.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.InvalidArgumentf("configuration file not found: %s", path).
				WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates YAML configuration
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that were set
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client.BaseURL != "" &&
		!strings.HasPrefix(c.Client.BaseURL, "http://") &&
		!strings.HasPrefix(c.Client.BaseURL, "https://") {
		vb.Field("client.base_url", "must be an http or https URL")
	}
	if c.Client.Timeout < 0 {
		vb.Field("client.timeout", "must not be negative")
	}
	errors.ValidateMin("randomizer.max_attempts", c.Randomizer.MaxAttempts, 0, vb)
	if c.Randomizer.Generation != "" {
		if _, err := dex.ParseGeneration(c.Randomizer.Generation); err != nil {
			vb.Fieldf("randomizer.generation", "unknown generation code %q", c.Randomizer.Generation)
		}
	}

	return vb.Build()
}

// ClientSettings converts the client section into a stratdex.Config
func (c *Config) ClientSettings() *stratdex.Config {
	return &stratdex.Config{
		BaseURL:     c.Client.BaseURL,
		HTTPTimeout: c.Client.Timeout,
		UserAgent:   c.Client.UserAgent,
	}
}

// DefaultGeneration returns the configured generation, or nil for a random one
func (c *Config) DefaultGeneration() (*dex.Generation, error) {
	if c.Randomizer.Generation == "" {
		return nil, nil
	}

	gen, err := dex.ParseGeneration(c.Randomizer.Generation)
	if err != nil {
		return nil, err
	}
	return &gen, nil
}
