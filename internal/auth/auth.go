// Package auth defines the authentication boundary for the site. The
// render tree never reaches into sessions or cookies itself: a Provider
// resolves a value-type State once per request, and pages receive that
// State as an explicit parameter.
package auth

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// State is the authentication view handed to the render tree. The zero
// value means an anonymous visitor.
type State struct {
	LoggedIn bool
	Email    string
	Name     string
}

// DisplayName returns the friendliest identifier available for greeting
// the visitor.
func (s State) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}

// Provider resolves the authentication state for a request. Implementations
// own the session/token mechanics; callers only see the resolved State.
type Provider interface {
	Resolve(c echo.Context) (State, error)
}

// Session keys used by the cookie-backed provider. Exported so that login
// integrations living outside this repository can populate them.
const (
	SessionName = "bbn-session"
	KeyEmail    = "email"
	KeyName     = "name"
)

// SessionProvider resolves auth state from the cookie session established
// by the session middleware. It never writes to the session.
type SessionProvider struct{}

// NewSessionProvider creates a new SessionProvider.
func NewSessionProvider() *SessionProvider {
	return &SessionProvider{}
}

// Resolve implements Provider.
func (p *SessionProvider) Resolve(c echo.Context) (State, error) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return State{}, err
	}

	email, _ := sess.Values[KeyEmail].(string)
	if email == "" {
		return State{}, nil
	}
	name, _ := sess.Values[KeyName].(string)

	return State{LoggedIn: true, Email: email, Name: name}, nil
}
