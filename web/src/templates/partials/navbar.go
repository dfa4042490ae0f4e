package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/bbnwebby/beyondbeauty/internal/auth"
	"github.com/bbnwebby/beyondbeauty/internal/site"
)

// Navbar renders the fixed top navigation bar. The auth state arrives as
// an explicit parameter; the navbar only reads it. Its h-16 height must
// stay in sync with the spacer in the document shell.
func Navbar(state auth.State) cmp.Node {
	return g.Header(
		g.Class("fixed top-0 inset-x-0 z-50 h-16 bg-white/90 backdrop-blur border-b border-pink-100"),
		g.Nav(
			g.Class("container mx-auto h-full px-4 flex items-center justify-between"),
			g.A(
				g.Href("/"),
				g.Class("text-xl font-extrabold text-pink-600"),
				cmp.Text(site.Name),
			),
			g.Ul(
				g.Class("flex items-center gap-6 text-sm font-medium"),
				navItem("/", "Home"),
				navItem("/contact", "Contact"),
				cmp.If(state.LoggedIn,
					g.Li(
						g.Span(
							g.Class("text-gray-500"),
							cmp.Text("Hi, "+state.DisplayName()),
						),
					),
				),
			),
		),
	)
}

func navItem(href, label string) cmp.Node {
	return g.Li(
		g.A(
			g.Href(href),
			g.Class("text-gray-700 hover:text-pink-600"),
			cmp.Text(label),
		),
	)
}
