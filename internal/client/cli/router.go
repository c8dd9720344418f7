package cli

import (
	"sync"

	"github.com/dmitrijs2005/clubauth/internal/client/flow"
	"github.com/dmitrijs2005/clubauth/internal/client/models"
)

// router owns the visible screen. Navigate mounts a fresh controller for the
// target screen and closes the previous one.
type router struct {
	mount  func(models.ScreenKind) *flow.Controller
	onShow func(models.ScreenKind)

	mu     sync.Mutex
	screen models.ScreenKind
	ctrl   *flow.Controller
}

func (r *router) Navigate(route models.Route) {
	screen, ok := models.ScreenFor(route)
	if !ok {
		return
	}

	next := r.mount(screen)

	r.mu.Lock()
	prev := r.ctrl
	r.screen, r.ctrl = screen, next
	r.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	if r.onShow != nil {
		r.onShow(screen)
	}
}

// show returns the controller of screen, navigating to it first if another
// screen is visible.
func (r *router) show(screen models.ScreenKind) *flow.Controller {
	if cur, ctrl := r.current(); ctrl != nil && cur == screen {
		return ctrl
	}
	r.Navigate(screen.Route())
	_, ctrl := r.current()
	return ctrl
}

func (r *router) current() (models.ScreenKind, *flow.Controller) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.screen, r.ctrl
}

func (r *router) close() {
	r.mu.Lock()
	ctrl := r.ctrl
	r.ctrl = nil
	r.mu.Unlock()

	if ctrl != nil {
		ctrl.Close()
	}
}
