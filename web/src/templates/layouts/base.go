package layouts

import (
	"strings"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/bbnwebby/beyondbeauty/internal/auth"
	"github.com/bbnwebby/beyondbeauty/internal/site"
	"github.com/bbnwebby/beyondbeauty/internal/view"
	"github.com/bbnwebby/beyondbeauty/web/src/templates/partials"
)

// Base is the document shell shared by every page: head metadata, the
// fixed navigation with its compensating spacer, the main content region
// carrying the visitor's auth state, and the footer, all on the brand
// gradient background. Composition order is fixed: nav, spacer, main,
// footer.
func Base(baseURL string, meta view.PageMeta, state auth.State, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(headTags(baseURL, meta)...),
			g.Body(
				g.Class("font-sans antialiased bg-gradient-to-b from-pink-50 via-white to-pink-100 text-gray-900"),
				partials.Navbar(state),
				// Compensates for the fixed navbar; must match its h-16.
				g.Div(g.Class("h-16"), cmp.Attr("aria-hidden", "true")),
				g.Main(
					g.Class("min-h-screen"),
					content,
				),
				partials.Footer(),
			),
		),
	)
}

func headTags(baseURL string, meta view.PageMeta) []cmp.Node {
	title := meta.DocumentTitle()
	desc := meta.DocumentDescription()
	canonical := meta.Canonical(baseURL)

	return []cmp.Node{
		g.Meta(g.Charset("utf-8")),
		g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
		g.TitleEl(cmp.Text(title)),
		g.Meta(g.Name("description"), g.Content(desc)),
		g.Meta(g.Name("keywords"), g.Content(strings.Join(site.Keywords, ", "))),
		g.Meta(g.Name("author"), g.Content(site.Publisher)),
		g.Meta(g.Name("creator"), g.Content(site.Publisher)),
		g.Meta(g.Name("publisher"), g.Content(site.Publisher)),
		g.Meta(g.Name("robots"), g.Content("index, follow")),
		g.Meta(g.Name("theme-color"), g.Content(site.ThemeColor)),
		g.Link(g.Rel("canonical"), g.Href(canonical)),
		g.Meta(cmp.Attr("property", "og:type"), g.Content(meta.Type())),
		g.Meta(cmp.Attr("property", "og:site_name"), g.Content(site.Name)),
		g.Meta(cmp.Attr("property", "og:title"), g.Content(title)),
		g.Meta(cmp.Attr("property", "og:description"), g.Content(desc)),
		g.Meta(cmp.Attr("property", "og:url"), g.Content(canonical)),
		g.Link(g.Rel("preconnect"), g.Href("https://fonts.googleapis.com")),
		g.Link(g.Rel("preconnect"), g.Href("https://fonts.gstatic.com"), cmp.Attr("crossorigin")),
		g.Link(g.Rel("stylesheet"), g.Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;600;800&display=swap")),
		g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
		g.Script(g.Type("application/ld+json"), cmp.Raw(view.WebsiteJSONLD(baseURL))),
	}
}
