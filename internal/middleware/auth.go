package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/bbnwebby/beyondbeauty/internal/auth"
)

// AuthContextKey is where the resolved auth state lives on the echo context.
const AuthContextKey = "auth.state"

// Auth resolves the visitor's authentication state once per request and
// stores it on the context. A provider failure degrades to an anonymous
// state rather than failing the page: every route on this site renders
// for anonymous visitors too.
func Auth(provider auth.Provider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, err := provider.Resolve(c)
			if err != nil {
				FromContext(c.Request().Context()).Warn("Failed to resolve auth state, continuing as anonymous",
					"path", c.Request().URL.Path,
					"error", err,
				)
				state = auth.State{}
			}

			c.Set(AuthContextKey, state)
			return next(c)
		}
	}
}

// StateFrom returns the auth state stored by Auth. It returns the
// anonymous state when the middleware did not run.
func StateFrom(c echo.Context) auth.State {
	if s, ok := c.Get(AuthContextKey).(auth.State); ok {
		return s
	}
	return auth.State{}
}
