// Package config loads the description of a tweeter world.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Account describes one member of the world.
type Account struct {
	Name  string `yaml:"name"`
	Liker bool   `yaml:"liker,omitempty"`
}

// Config is the world description.
type Config struct {
	Accounts []Account `yaml:"accounts"`
	// Tweets is how many tweets every account sends.
	Tweets   int    `yaml:"tweets"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the four-account world: everyone follows everyone,
// only emma and beth receive likes.
func Default() Config {
	return Config{
		Accounts: []Account{
			{Name: "john"},
			{Name: "emma", Liker: true},
			{Name: "bob"},
			{Name: "beth", Liker: true},
		},
		Tweets:   10,
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks the world can run.
func (c Config) Validate() error {
	if len(c.Accounts) == 0 {
		return errors.New("no accounts")
	}
	if c.Tweets <= 0 {
		return fmt.Errorf("tweets must be positive, got %d", c.Tweets)
	}
	seen := make(map[string]bool, len(c.Accounts))
	for _, a := range c.Accounts {
		if a.Name == "" {
			return errors.New("account with empty name")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate account %q", a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}
