package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every runtime option for the service. Values come from
// a YAML file with ${ENV} placeholders expanded before parsing.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	Auth struct {
		SigningKey      string `yaml:"signing_key"`
		TokenExpiration int    `yaml:"token_expiration"`
		Issuer          string `yaml:"issuer"`
	} `yaml:"auth"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads the config file at path, expands environment variable
// placeholders, applies defaults, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	content := string(data)
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		placeholder := "${" + pair[0] + "}"
		content = strings.ReplaceAll(content, placeholder, pair[1])
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.DSN == "" {
		c.Database.DSN = "file:taskboard.db?cache=shared"
	}
	if c.Auth.TokenExpiration == 0 {
		c.Auth.TokenExpiration = 30
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = "taskboard"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the options that have no usable default.
func (c *Config) Validate() error {
	if c.Auth.SigningKey == "" {
		return fmt.Errorf("auth.signing_key is required")
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	return nil
}

// GetSigningKey returns the JWT signing secret.
func (c *Config) GetSigningKey() string { return c.Auth.SigningKey }

// GetTokenExpiration returns the token TTL in minutes.
func (c *Config) GetTokenExpiration() int { return c.Auth.TokenExpiration }

// GetIssuer returns the token issuer claim.
func (c *Config) GetIssuer() string { return c.Auth.Issuer }
