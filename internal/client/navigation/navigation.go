// Package navigation provides the Navigator collaborator contract and a
// cancellable, one-shot delayed action used to redirect after a successful
// password-reset request.
package navigation

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"k8s.io/utils/clock"
)

// Navigator switches the visible screen.
type Navigator interface {
	Navigate(route models.Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route models.Route)

func (f NavigatorFunc) Navigate(route models.Route) { f(route) }

// Handle identifies a scheduled action. The zero value is not usable.
type Handle struct {
	mu        sync.Mutex
	timer     clock.Timer
	cancelled bool
	fired     bool
}

// Fired reports whether the action has run.
func (h *Handle) Fired() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fired
}

// Delayed runs actions after a delay on the supplied clock.
type Delayed struct {
	clock clock.WithDelayedExecution
}

// NewDelayed returns a Delayed bound to clk. Pass clock.RealClock{} in
// production and a fake clock in tests.
func NewDelayed(clk clock.WithDelayedExecution) *Delayed {
	return &Delayed{clock: clk}
}

// Schedule arranges for action to run once, no earlier than delay from now.
func (d *Delayed) Schedule(action func(), delay time.Duration) *Handle {
	h := &Handle{}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.timer = d.clock.AfterFunc(delay, func() {
		h.mu.Lock()
		if h.cancelled || h.fired {
			h.mu.Unlock()
			return
		}
		h.fired = true
		h.mu.Unlock()

		action()
	})
	return h
}

// Cancel prevents a pending action from running. It returns true if the
// action had not fired yet; once Cancel returns, the action never starts.
// Cancelling nil or an already cancelled handle is a no-op.
func (d *Delayed) Cancel(h *Handle) bool {
	if h == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cancelled || h.fired {
		return false
	}
	h.cancelled = true
	h.timer.Stop()
	return true
}

// NavigateAfter schedules nav.Navigate(route) after delay.
func (d *Delayed) NavigateAfter(nav Navigator, route models.Route, delay time.Duration) *Handle {
	return d.Schedule(func() { nav.Navigate(route) }, delay)
}
