package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/clubauth/internal/client/config"
	"github.com/dmitrijs2005/clubauth/internal/client/flow"
	"github.com/dmitrijs2005/clubauth/internal/client/gateway"
	"github.com/dmitrijs2005/clubauth/internal/client/localdb"
	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/dmitrijs2005/clubauth/internal/client/navigation"
	"github.com/dmitrijs2005/clubauth/internal/client/services"
	"github.com/dmitrijs2005/clubauth/internal/client/session"
	"github.com/dmitrijs2005/clubauth/internal/client/translate"
	"github.com/dmitrijs2005/clubauth/internal/logging"
	"k8s.io/utils/clock"
)

// App is the interactive client.
type App struct {
	logger     logging.Logger
	db         *sql.DB
	gateway    gateway.AuthGateway
	closers    []func() error
	translator *translate.Translator
	store      *session.Store
	sessions   *services.SessionService
	scheduler  *navigation.Delayed
	router     *router
	reader     *bufio.Reader
	out        *console
	stop       []func()
}

// NewApp opens the session database and connects the configured provider.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	db, err := localdb.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	gw, closeGateway, err := newGateway(c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(logger, db, gw, translate.New(c.Locale), navigation.NewDelayed(clock.RealClock{}), os.Stdin, os.Stdout)
	if closeGateway != nil {
		a.closers = append(a.closers, closeGateway)
	}
	a.closers = append(a.closers, db.Close)
	return a, nil
}

func newGateway(c *config.Config) (gateway.AuthGateway, func() error, error) {
	switch c.Provider {
	case config.ProviderIdentityToolkit:
		client := &http.Client{Timeout: c.RequestTimeout}
		return gateway.NewIdentityToolkitGateway(c.IdentityToolkitURL, c.APIKey, client), nil, nil
	default:
		gw, err := gateway.NewGRPCGateway(c.ProviderAddr, c.RequestTimeout)
		if err != nil {
			return nil, nil, err
		}
		return gw, gw.Close, nil
	}
}

func newApp(logger logging.Logger, db *sql.DB, gw gateway.AuthGateway, tr *translate.Translator,
	scheduler *navigation.Delayed, in io.Reader, out io.Writer) *App {

	store := session.NewStore()
	a := &App{
		logger:     logger.With("module", "cli"),
		db:         db,
		gateway:    gw,
		translator: tr,
		store:      store,
		sessions:   services.NewSessionService(db, store, logger),
		scheduler:  scheduler,
		reader:     bufio.NewReader(in),
		out:        &console{w: out},
	}
	a.router = &router{mount: a.mount, onShow: a.showScreen}
	return a
}

// mount builds the controller of a freshly shown screen.
func (a *App) mount(screen models.ScreenKind) *flow.Controller {
	deps := flow.Deps{
		Gateway:    a.gateway,
		Sessions:   a.store,
		Translator: a.translator,
		Navigator:  a.router,
		Scheduler:  a.scheduler,
		Logger:     a.logger,
	}
	return flow.New(screen, deps, flow.WithOnChange(func(s flow.State) {
		if s.Phase == flow.Submitting {
			a.out.Println(a.translator.Text(busyText[screen]))
		}
	}))
}

// start restores the previous session and shows the sign-in screen.
func (a *App) start(ctx context.Context) {
	a.stop = append(a.stop, a.sessions.Track(ctx))
	a.stop = append(a.stop, a.store.Subscribe(func(identity *models.Identity) {
		a.onSessionChange(identity)
	}))

	a.router.Navigate(models.RouteSignIn)

	identity, ok, err := a.sessions.Restore(ctx)
	switch {
	case err != nil:
		a.logger.Warn(ctx, "session not restored", "error", err)
	case ok:
		a.logger.Debug(ctx, "restored session", "uid", identity.ID)
	}
}

func (a *App) onSessionChange(identity *models.Identity) {
	if identity == nil {
		a.out.Println(a.translator.Text(translate.MsgSignedOut))
		a.router.Navigate(models.RouteSignIn)
		return
	}
	a.out.Printf("%s: %s\n", a.translator.Text(translate.MsgSignedIn), identity.Email)
}

func (a *App) isSignedIn() bool {
	_, ok := a.store.Get()
	return ok
}

func (a *App) status() string {
	screen, _ := a.router.current()
	if identity, ok := a.store.Get(); ok {
		return screen.String() + " " + identity.Email
	}
	return screen.String()
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.out.Println("clubauth CLI (type 'help' for commands)")
	a.start(ctx)
	runREPL(ctx, a, a.status, a.reader, a.out)
}

// Close tears down the visible screen and releases resources.
func (a *App) Close() {
	a.router.close()
	for _, stop := range a.stop {
		stop()
	}
	a.stop = nil
	for _, c := range a.closers {
		_ = c()
	}
	a.closers = nil
}
