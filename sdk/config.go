package sdk

import (
	"fmt"

	"github.com/kbukum/paysdk/config"
	"github.com/kbukum/paysdk/internal/transport"
)

// Config configures a Client.
type Config struct {
	Service   config.ServiceConfig `yaml:"service" mapstructure:"service"`
	Transport transport.Config     `yaml:"transport" mapstructure:"transport"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.Service.ApplyDefaults()
	c.Transport.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.Service.Validate(); err != nil {
		return err
	}
	if err := c.Transport.Validate(); err != nil {
		return err
	}
	return nil
}

// LoadConfig loads, defaults and validates the configuration for name.
func LoadConfig(name string, opts ...config.LoaderOption) (*Config, error) {
	var cfg Config
	if err := config.LoadConfig(name, &cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Service.Name == "" {
		cfg.Service.Name = name
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sdk: invalid config: %w", err)
	}
	return &cfg, nil
}
