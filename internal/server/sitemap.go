package server

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bbnwebby/beyondbeauty/internal/view"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

func (s *Server) sitemapGet(c echo.Context) error {
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: view.BuildURL(s.Cfg.BaseURL)},
			{Loc: view.BuildURL(s.Cfg.BaseURL, "contact")},
		},
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(set)
}

func (s *Server) robotsGet(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + view.BuildURL(s.Cfg.BaseURL, "sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}
