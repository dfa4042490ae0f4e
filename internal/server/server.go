package server

import (
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/bbnwebby/beyondbeauty/internal/auth"
	"github.com/bbnwebby/beyondbeauty/internal/config"
	"github.com/bbnwebby/beyondbeauty/internal/handlers"
	appmw "github.com/bbnwebby/beyondbeauty/internal/middleware"
	"github.com/bbnwebby/beyondbeauty/internal/rendering"
	"github.com/bbnwebby/beyondbeauty/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E            *echo.Echo
	Cfg          *config.Config
	authProvider auth.Provider
	homeHandler  *handlers.HomeHandler
}

// New creates a new Server instance. The auth provider is injected
// explicitly so the page shell never reaches for ambient session state
// itself; the default wiring in cmd/server passes the cookie-session
// provider.
func New(cfg *config.Config, authProvider auth.Provider) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(appmw.RequestID())
	e.Use(appmw.Logger)
	e.Use(echomw.Secure())
	e.Use(echomw.GzipWithConfig(echomw.GzipConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/static/")
		},
	}))

	// Configure and use session middleware. The session only ever feeds
	// the auth provider; no handler in this repo writes to it.
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
	}
	e.Use(session.Middleware(store))
	e.Use(appmw.Auth(authProvider))

	// Serve embedded static assets.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	e.Renderer = rendering.NewComponentRenderer()
	setupErrorHandling(e)

	return &Server{
		E:            e,
		Cfg:          cfg,
		authProvider: authProvider,
		homeHandler:  handlers.NewHomeHandler(cfg.BaseURL),
	}
}
