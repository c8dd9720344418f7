// Package config loads settings for the development identity provider:
// defaults first, then an optional JSON file (-c / -config), then flags.
package config

import "time"

// Config holds runtime settings for the development identity provider.
//
// SecretKey signs issued id tokens (HS256). The default is for local use
// only.
type Config struct {
	Address           string
	SecretKey         string
	TokenTTL          time.Duration
	AttemptsPerMinute int
	SignUpDisabled    bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Address = ":50061"
	c.SecretKey = "secretKey"
	c.TokenTTL = time.Hour
	c.AttemptsPerMinute = 5
	c.SignUpDisabled = false
}

// LoadConfig applies defaults, then the JSON file, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
