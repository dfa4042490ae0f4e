package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bbnwebby/beyondbeauty/internal/middleware"
	"github.com/bbnwebby/beyondbeauty/internal/site"
	"github.com/bbnwebby/beyondbeauty/internal/view"
	"github.com/bbnwebby/beyondbeauty/web/src/templates/layouts"
	"github.com/bbnwebby/beyondbeauty/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	baseURL string
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(baseURL string) *HomeHandler {
	return &HomeHandler{baseURL: baseURL}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	// The auth middleware has already resolved the visitor's state; from
	// here on it travels as an explicit parameter.
	state := middleware.StateFrom(c)

	meta := view.PageMeta{
		Description: site.Description,
		Path:        "/",
	}

	page := layouts.Base(h.baseURL, meta, state, pages.Home())
	return c.Render(http.StatusOK, "", page)
}
