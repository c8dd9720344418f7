package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ProviderGRPC, c.Provider)
	assert.Equal(t, "127.0.0.1:50061", c.ProviderAddr)
	assert.Equal(t, "ja", c.Locale)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := defaults()
	c.Provider = ProviderIdentityToolkit
	assert.ErrorIs(t, c.Validate(), ErrMissingAPIKey)

	c.APIKey = "key"
	assert.NoError(t, c.Validate())

	c.Provider = "ldap"
	assert.ErrorIs(t, c.Validate(), ErrUnknownProvider)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    func(c *Config)
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-p", "identitytoolkit", "-a", "h:1", "-u", "http://tk", "-k", "key",
				"-l", "en", "-d", "/tmp/s.db", "-t", "3"},
			expected: func(c *Config) {
				c.Provider = ProviderIdentityToolkit
				c.ProviderAddr = "h:1"
				c.IdentityToolkitURL = "http://tk"
				c.APIKey = "key"
				c.Locale = "en"
				c.SessionDB = "/tmp/s.db"
				c.RequestTimeout = 3 * time.Second
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"-c", "cfg.json", "-z", "-l", "en"},
			expected: func(c *Config) { c.Locale = "en" },
		},
		{name: "bad timeout", args: []string{"-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			cfg := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })

			want := defaults()
			tt.expected(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestParseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"provider_addr":   "www.example:9000",
		"locale":          "en",
		"request_timeout": "30s",
	})

	t.Run("loads file from -config", func(t *testing.T) {
		withArgs(t, "-config", path)
		cfg := defaults()
		parseJson(cfg)

		want := defaults()
		want.ProviderAddr = "www.example:9000"
		want.Locale = "en"
		want.RequestTimeout = 30 * time.Second
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("no file leaves config alone", func(t *testing.T) {
		withArgs(t)
		cfg := defaults()
		parseJson(cfg)
		assert.Empty(t, cmp.Diff(defaults(), cfg))
	})

	t.Run("missing file panics", func(t *testing.T) {
		withArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))
		require.Panics(t, func() { parseJson(defaults()) })
	})
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"locale": "en", "session_db": "from-json.db"})
	withArgs(t, "-c", path, "-l", "ja")

	cfg := LoadConfig()
	assert.Equal(t, "ja", cfg.Locale)
	assert.Equal(t, "from-json.db", cfg.SessionDB)
}
