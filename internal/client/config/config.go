package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	ProviderGRPC            = "grpc"
	ProviderIdentityToolkit = "identitytoolkit"
)

var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrMissingAPIKey   = errors.New("identitytoolkit provider requires an API key")
)

// Config holds runtime settings for the clubauth CLI.
type Config struct {
	Provider           string
	ProviderAddr       string
	IdentityToolkitURL string
	APIKey             string
	Locale             string
	SessionDB          string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with defaults for a local development provider.
func (c *Config) LoadDefaults() {
	c.Provider = ProviderGRPC
	c.ProviderAddr = "127.0.0.1:50061"
	c.IdentityToolkitURL = ""
	c.APIKey = ""
	c.Locale = "ja"
	c.SessionDB = "clubauth.db"
	c.RequestTimeout = 10 * time.Second
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGRPC:
		return nil
	case ProviderIdentityToolkit:
		if c.APIKey == "" {
			return ErrMissingAPIKey
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
}

// LoadConfig constructs a Config from defaults, the JSON file and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
