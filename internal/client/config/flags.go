package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/clubauth/internal/flagx"
)

// parseFlags populates cfg from command-line flags (see the package doc).
// Only the flags handled here are parsed; it panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-p", "-a", "-u", "-k", "-l", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Provider, "p", cfg.Provider, "identity provider (grpc|identitytoolkit)")
	fs.StringVar(&cfg.ProviderAddr, "a", cfg.ProviderAddr, "address and port of the gRPC identity provider")
	fs.StringVar(&cfg.IdentityToolkitURL, "u", cfg.IdentityToolkitURL, "Identity Toolkit base URL")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "Identity Toolkit API key")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "message language")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "session database path")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
