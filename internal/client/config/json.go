package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/clubauth/internal/flagx"
	"github.com/dmitrijs2005/clubauth/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. Absent fields keep
// their current value.
type JsonConfig struct {
	Provider           *string         `json:"provider"`
	ProviderAddr       *string         `json:"provider_addr"`
	IdentityToolkitURL *string         `json:"identitytoolkit_url"`
	APIKey             *string         `json:"api_key"`
	Locale             *string         `json:"locale"`
	SessionDB          *string         `json:"session_db"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the file named by -c or -config, if any.
// It panics on read or decode errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	setString(&cfg.Provider, c.Provider)
	setString(&cfg.ProviderAddr, c.ProviderAddr)
	setString(&cfg.IdentityToolkitURL, c.IdentityToolkitURL)
	setString(&cfg.APIKey, c.APIKey)
	setString(&cfg.Locale, c.Locale)
	setString(&cfg.SessionDB, c.SessionDB)
	if c.RequestTimeout != nil {
		cfg.RequestTimeout = c.RequestTimeout.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
