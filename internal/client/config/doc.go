// Package config loads runtime configuration for the clubauth CLI.
//
// Sources, later ones win:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Flags
//
//	-p string   identity provider: "grpc" or "identitytoolkit"
//	-a string   address:port of the gRPC identity provider
//	-u string   Identity Toolkit base URL
//	-k string   Identity Toolkit API key
//	-l string   message language (BCP 47, e.g. "ja", "en")
//	-d string   path of the local session database
//	-t int      provider request timeout (seconds)
//
// # JSON schema
//
// Durations are timex.Duration values, so "10s" and integer nanoseconds are
// both accepted:
//
//	{
//	  "provider": "grpc",
//	  "provider_addr": "127.0.0.1:50061",
//	  "locale": "ja",
//	  "session_db": "clubauth.db",
//	  "request_timeout": "10s"
//	}
package config
