package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/clubauth/internal/flagx"
	"github.com/dmitrijs2005/clubauth/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Fields left out of the file
// keep their current value.
type JsonConfig struct {
	Address           *string         `json:"address"`
	SecretKey         *string         `json:"secret_key"`
	TokenTTL          *timex.Duration `json:"token_ttl"`
	AttemptsPerMinute *int            `json:"attempts_per_minute"`
	SignUpDisabled    *bool           `json:"sign_up_disabled"`
}

// parseJson overlays config with the file named by -c or -config.
// It panics if the file cannot be read or decoded.
func parseJson(config *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	if err := applyJson(config, file); err != nil {
		panic(err)
	}
}

func applyJson(config *Config, data []byte) error {
	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return err
	}

	if c.Address != nil {
		config.Address = *c.Address
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenTTL != nil {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.AttemptsPerMinute != nil {
		config.AttemptsPerMinute = *c.AttemptsPerMinute
	}
	if c.SignUpDisabled != nil {
		config.SignUpDisabled = *c.SignUpDisabled
	}
	return nil
}
