package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bbnwebby/beyondbeauty/internal/handlers"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET("/contact", handlers.ContactGet(s.Cfg.BaseURL))

	s.E.GET("/sitemap.xml", s.sitemapGet)
	s.E.GET("/robots.txt", s.robotsGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
