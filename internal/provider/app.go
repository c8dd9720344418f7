package provider

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/clubauth/internal/logging"
)

// Server runs until its context is cancelled.
type Server interface {
	Run(ctx context.Context) error
}

// App runs the development provider until SIGINT, SIGTERM or SIGQUIT.
type App struct {
	logger logging.Logger
	server Server
}

func NewApp(logger logging.Logger, server Server) *App {
	return &App{logger: logger, server: server}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a stop signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}
