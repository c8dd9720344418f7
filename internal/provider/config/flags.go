package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/clubauth/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   gRPC bind address (e.g. ":50061")
//	-s string   token signing key
//	-t int      token validity, minutes
//	-r int      sign-in and reset attempts per minute per email (0 = unlimited)
//	-n bool     reject sign-ups
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-r", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run provider")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing key")
	tokenTTL := fs.Int("t", int(config.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.IntVar(&config.AttemptsPerMinute, "r", config.AttemptsPerMinute, "attempts per minute per email")
	fs.BoolVar(&config.SignUpDisabled, "n", config.SignUpDisabled, "reject sign-ups")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenTTL = time.Duration(*tokenTTL) * time.Minute
}
