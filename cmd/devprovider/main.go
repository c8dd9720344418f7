// Command devprovider runs an in-memory identity provider for local
// development of the clubauth client.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/clubauth/internal/logging"
	"github.com/dmitrijs2005/clubauth/internal/provider"
	"github.com/dmitrijs2005/clubauth/internal/provider/config"
	"github.com/dmitrijs2005/clubauth/internal/provider/grpcserver"
)

func main() {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := config.LoadConfig()

	dir := provider.NewDirectory(provider.Options{
		Issuer:            "clubauth-devprovider",
		SecretKey:         []byte(cfg.SecretKey),
		TokenTTL:          cfg.TokenTTL,
		AttemptsPerMinute: cfg.AttemptsPerMinute,
		SignUpDisabled:    cfg.SignUpDisabled,
	}, logger)

	app := provider.NewApp(logger, grpcserver.NewGRPCServer(cfg.Address, logger, dir))
	if err := app.Run(context.Background()); err != nil {
		os.Exit(1)
	}

}
