package console

import (
	"sync"

	"github.com/kubev2v/vcfctl/internal/models"
)

// Location is an entry of the page history.
type Location struct {
	Page   models.Page
	Reason string
}

// Router keeps the page history. Unknown pages resolve to the login page.
type Router struct {
	mu      sync.Mutex
	history []Location
}

func NewRouter(start models.Page) *Router {
	return &Router{history: []Location{{Page: resolve(start)}}}
}

// Navigate pushes the target page, or replaces the current one when nav.Replace is set.
func (r *Router) Navigate(nav models.Navigation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc := Location{Page: resolve(nav.Page), Reason: nav.Reason}
	if nav.Replace {
		r.history[len(r.history)-1] = loc
		return
	}
	r.history = append(r.history, loc)
}

// Back returns to the previous page. It reports false when there is none.
func (r *Router) Back() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.history) < 2 {
		return false
	}
	r.history = r.history[:len(r.history)-1]
	return true
}

func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[len(r.history)-1]
}

// Depth is the number of entries in the history.
func (r *Router) Depth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

func resolve(page models.Page) models.Page {
	switch page {
	case models.PageLogin, models.PageVirtualCenters:
		return page
	default:
		return models.PageLogin
	}
}
