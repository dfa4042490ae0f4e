package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/bbnwebby/beyondbeauty/internal/site"
)

// Footer renders the site-wide footer with brand blurb, quick links and
// contact shortcuts.
func Footer() cmp.Node {
	return g.Footer(
		g.Class("bg-gray-900 text-gray-300"),
		g.Div(
			g.Class("container mx-auto px-4 py-10 grid gap-8 md:grid-cols-3"),
			g.Div(
				g.H3(g.Class("text-lg font-bold text-white mb-2"), cmp.Text(site.Name)),
				g.P(g.Class("text-sm leading-relaxed"), cmp.Text(site.Tagline)),
			),
			g.Div(
				g.H3(g.Class("text-lg font-bold text-white mb-2"), cmp.Text("Quick Links")),
				g.Ul(
					g.Class("space-y-1 text-sm"),
					g.Li(g.A(g.Href("/"), g.Class("hover:text-pink-400"), cmp.Text("Home"))),
					g.Li(g.A(g.Href("/contact"), g.Class("hover:text-pink-400"), cmp.Text("Contact"))),
				),
			),
			g.Div(
				g.H3(g.Class("text-lg font-bold text-white mb-2"), cmp.Text("Reach Us")),
				g.Ul(
					g.Class("space-y-1 text-sm"),
					g.Li(g.A(g.Href(site.PhoneHref), g.Class("hover:text-pink-400"), cmp.Text(site.Phone))),
					g.Li(g.A(g.Href(site.EmailHref), g.Class("hover:text-pink-400"), cmp.Text(site.Email))),
				),
			),
		),
		g.Div(
			g.Class("border-t border-gray-800 py-4 text-center text-xs text-gray-500"),
			cmp.Text("© "+site.Name+". All rights reserved."),
		),
	)
}
