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

// ContactGet returns the handler that renders the contact page.
func ContactGet(baseURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := middleware.StateFrom(c)

		meta := view.PageMeta{
			Title:       "Contact",
			Description: "Call, WhatsApp or email " + site.Name + ", or find us on the map.",
			Path:        "/contact",
		}

		page := layouts.Base(baseURL, meta, state, pages.Contact())
		return c.Render(http.StatusOK, "", page)
	}
}
