package navigation

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/siakad-id/siakad/core"
)

// Decision is the guard's verdict on a route intent.
type Decision int

const (
	Proceed Decision = iota
	RedirectToLogin
	RedirectToHome
)

func (d Decision) String() string {
	switch d {
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToHome:
		return "redirect-to-home"
	default:
		return "proceed"
	}
}

type (
	// AuthState is the read-only view of the session the guard consults.
	AuthState interface {
		IsAuthenticated() bool
	}

	// Indicator is the loading-indicator side channel. Whatever starts it
	// is paired with a stop on every exit path.
	Indicator interface {
		Start()
		Stop()
	}

	// Guard intercepts every transition, consults the session state and
	// redirects unauthenticated/authenticated users as required.
	Guard struct {
		routes    map[string]Route
		session   AuthState
		indicator Indicator
		setTitle  func(title string)
		logger    core.Logger
	}
)

func NewGuard(routes []Route, session AuthState, indicator Indicator, setTitle func(string), logger core.Logger) *Guard {
	table := make(map[string]Route, len(routes))
	for _, rt := range routes {
		table[rt.Path] = rt
	}
	if indicator == nil {
		indicator = nopIndicator{}
	}
	if setTitle == nil {
		setTitle = func(string) {}
	}
	return &Guard{
		routes:    table,
		session:   session,
		indicator: indicator,
		setTitle:  setTitle,
		logger:    logger,
	}
}

// Decide applies the decision table. RequiresAuth is checked before
// GuestOnly, so a contradictory route that sets both redirects to login
// when logged out.
func (g *Guard) Decide(rt Route) Decision {
	authed := g.session.IsAuthenticated()
	switch {
	case rt.RequiresAuth && !authed:
		return RedirectToLogin
	case rt.GuestOnly && authed:
		return RedirectToHome
	default:
		return Proceed
	}
}

// Navigate resolves the path against the route table, applies the guard
// decision and returns the route that was actually reached. The loading
// indicator runs for the whole transition and always stops, the page title
// is updated on completion.
func (g *Guard) Navigate(path string) (Route, Decision, error) {
	g.indicator.Start()
	defer g.indicator.Stop()

	rt, ok := g.routes[path]
	if !ok {
		rt, ok = g.routes[NotFoundPath]
		if !ok {
			return Route{}, Proceed, errors.Errorf("no route for %q", path)
		}
	}

	decision := g.Decide(rt)
	switch decision {
	case RedirectToLogin:
		g.logger.Debug(fmt.Sprintf("navigation: %s requires authentication, redirecting to %s", rt.Path, LoginPath))
		rt = g.routes[LoginPath]
	case RedirectToHome:
		g.logger.Debug(fmt.Sprintf("navigation: %s is guest-only, redirecting to %s", rt.Path, HomePath))
		rt = g.routes[HomePath]
	}

	g.setTitle(rt.Title)
	return rt, decision, nil
}

type nopIndicator struct{}

func (nopIndicator) Start() {}
func (nopIndicator) Stop()  {}
