package view

import (
	"encoding/json"
	"net/url"

	"github.com/bbnwebby/beyondbeauty/internal/site"
)

// PageMeta carries per-page head metadata into the document shell.
type PageMeta struct {
	Title       string // page title; empty on the root page
	Description string // falls back to the site description when empty
	Path        string // absolute request path, e.g. "/contact"
	OGType      string // defaults to "website"
}

// DocumentTitle applies the site title template: the root page is the bare
// site name, nested pages are "<page> | <site name>".
func (m PageMeta) DocumentTitle() string {
	if m.Title == "" {
		return site.Name
	}
	return m.Title + " | " + site.Name
}

// DocumentDescription returns the page description, falling back to the
// site-wide one.
func (m PageMeta) DocumentDescription() string {
	if m.Description == "" {
		return site.Description
	}
	return m.Description
}

// Type returns the OpenGraph object type for the page.
func (m PageMeta) Type() string {
	if m.OGType == "" {
		return "website"
	}
	return m.OGType
}

// Canonical resolves the page's canonical URL against the site base URL.
// The root page's canonical is the base URL itself.
func (m PageMeta) Canonical(base string) string {
	if m.Path == "" || m.Path == "/" {
		return base
	}
	return BuildURL(base, m.Path)
}

// BuildURL joins a base URL with path segments.
func BuildURL(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	return u.JoinPath(segments...).String()
}

// WebsiteJSONLD returns the JSON-LD string for the schema.org WebSite
// block emitted in every page head.
func WebsiteJSONLD(baseURL string) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        site.Name,
		"url":         baseURL,
		"description": site.Description,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.Publisher,
		},
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
