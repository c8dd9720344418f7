package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/clubauth/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverFunc func(ctx context.Context) error

func (f serverFunc) Run(ctx context.Context) error { return f(ctx) }

func TestApp_RunStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	app := NewApp(logging.NewDiscard(), serverFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}))

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_RunReturnsServerError(t *testing.T) {
	boom := errors.New("listen failed")
	app := NewApp(logging.NewDiscard(), serverFunc(func(context.Context) error { return boom }))

	assert.ErrorIs(t, app.Run(context.Background()), boom)
}
