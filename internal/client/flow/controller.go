package flow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/clubauth/internal/client/form"
	"github.com/dmitrijs2005/clubauth/internal/client/gateway"
	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/dmitrijs2005/clubauth/internal/client/navigation"
	"github.com/dmitrijs2005/clubauth/internal/client/session"
	"github.com/dmitrijs2005/clubauth/internal/client/translate"
	"github.com/dmitrijs2005/clubauth/internal/logging"
	"k8s.io/utils/clock"
)

// ResetRedirectDelay is how long the reset-request screen shows its notice
// before returning to sign-in.
const ResetRedirectDelay = 3 * time.Second

var (
	ErrClosed         = errors.New("flow: screen closed")
	ErrInFlight       = errors.New("flow: submission already in flight")
	ErrSubmitDisabled = errors.New("flow: submit disabled")
)

// Deps are the collaborators of a Controller. Gateway, Sessions, Translator
// and Navigator are required; Scheduler defaults to the real clock and
// Logger to a discarding logger.
type Deps struct {
	Gateway    gateway.AuthGateway
	Sessions   session.Writer
	Translator *translate.Translator
	Navigator  navigation.Navigator
	Scheduler  *navigation.Delayed
	Logger     logging.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers fn to receive every state transition, in order.
// fn is called without internal locks held.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller drives the submission cycle of one screen instance.
type Controller struct {
	screen   models.ScreenKind
	deps     Deps
	logger   logging.Logger
	onChange func(State)

	// notifyMu keeps onChange deliveries in transition order.
	notifyMu sync.Mutex

	mu       sync.Mutex
	state    State
	closed   bool
	locked   bool
	redirect *navigation.Handle
}

// New returns an Idle controller for screen.
func New(screen models.ScreenKind, deps Deps, opts ...Option) *Controller {
	if deps.Logger == nil {
		deps.Logger = logging.NewDiscard()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = navigation.NewDelayed(clock.RealClock{})
	}

	c := &Controller{
		screen: screen,
		deps:   deps,
		logger: deps.Logger.With("module", "flow", "screen", screen.String()),
		state:  State{Phase: Idle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Screen returns the screen this controller belongs to.
func (c *Controller) Screen() models.ScreenKind {
	return c.screen
}

// Submit validates values and, if they are valid, performs the screen's
// provider call. Field errors are returned with a nil error and leave the
// state untouched. A provider failure is returned as a translate.Failure.
func (c *Controller) Submit(ctx context.Context, values form.Values) (form.Errors, error) {
	c.mu.Lock()
	switch {
	case c.closed:
		c.mu.Unlock()
		return nil, ErrClosed
	case c.state.Phase == Submitting:
		c.mu.Unlock()
		c.logger.Debug(ctx, "submit ignored, request in flight")
		return nil, ErrInFlight
	case c.locked:
		c.mu.Unlock()
		return nil, ErrSubmitDisabled
	}

	if errs := form.Validate(values, c.screen); !errs.Valid() {
		c.mu.Unlock()
		return errs, nil
	}

	var changes []State
	if c.state.Phase != Idle {
		changes = append(changes, c.setState(State{Phase: Idle}))
	}
	changes = append(changes, c.setState(State{Phase: Submitting}))
	c.mu.Unlock()
	c.notify(changes...)

	identity, err := c.call(ctx, values)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Debug(ctx, "result discarded, screen closed")
		return nil, ErrClosed
	}

	if err != nil {
		failure := c.deps.Translator.Translate(c.screen, gateway.CodeOf(err))
		next := c.setState(State{Phase: Failed, Failure: &failure})
		c.mu.Unlock()
		c.notify(next)

		c.logger.Warn(ctx, "submission failed", "code", failure.Code, "category", failure.Category.String())
		return nil, failure
	}

	next := State{Phase: Succeeded}
	if c.screen == models.ScreenResetRequest {
		next.Notice = c.deps.Translator.Text(translate.MsgResetSent)
		c.locked = true
		c.redirect = c.deps.Scheduler.Schedule(c.redirectToSignIn, ResetRedirectDelay)
	}
	next = c.setState(next)
	c.mu.Unlock()
	c.notify(next)

	if c.screen != models.ScreenResetRequest {
		c.deps.Sessions.Set(&identity)
	}

	c.logger.Info(ctx, "submission succeeded")
	return nil, nil
}

func (c *Controller) call(ctx context.Context, values form.Values) (models.Identity, error) {
	email := values[form.FieldEmail]
	switch c.screen {
	case models.ScreenSignIn:
		return c.deps.Gateway.SignIn(ctx, email, values[form.FieldSecret])
	case models.ScreenSignUp:
		return c.deps.Gateway.SignUp(ctx, email, values[form.FieldSecret])
	default:
		return models.Identity{}, c.deps.Gateway.SendPasswordReset(ctx, email)
	}
}

func (c *Controller) redirectToSignIn() {
	c.mu.Lock()
	alive := !c.closed
	c.mu.Unlock()

	if alive {
		c.deps.Navigator.Navigate(models.RouteSignIn)
	}
}

// Edit records a field edit. A Failed screen returns to Idle; other phases
// are unaffected.
func (c *Controller) Edit() {
	c.mu.Lock()
	if c.closed || c.state.Phase != Failed {
		c.mu.Unlock()
		return
	}
	next := c.setState(State{Phase: Idle})
	c.mu.Unlock()
	c.notify(next)
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Busy reports whether a submission is in flight.
func (c *Controller) Busy() bool {
	return c.State().Phase == Submitting
}

// CanSubmit reports whether Submit would reach validation.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed && !c.locked && c.state.Phase != Submitting
}

// Close tears the screen down: the pending redirect is cancelled and an
// in-flight result is dropped. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	h := c.redirect
	c.redirect = nil
	c.mu.Unlock()

	c.deps.Scheduler.Cancel(h)
}

// setState must be called with c.mu held.
func (c *Controller) setState(s State) State {
	c.state = s
	return s
}

func (c *Controller) notify(states ...State) {
	if c.onChange == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	for _, s := range states {
		c.onChange(s)
	}
}
