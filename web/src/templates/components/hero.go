package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Hero renders the primary call-to-action banner on the home page. The
// button is a visual affordance only; any activation behavior is wired by
// the caller, not here.
func Hero() cmp.Node {
	return g.Section(
		g.Class("relative overflow-hidden bg-gradient-to-r from-pink-500 via-rose-500 to-fuchsia-600 text-white"),
		// Decorative circles behind the copy.
		g.Div(
			g.Class("absolute -top-16 -left-16 w-64 h-64 rounded-full bg-white/10"),
			cmp.Attr("aria-hidden", "true"),
		),
		g.Div(
			g.Class("absolute -bottom-24 -right-10 w-80 h-80 rounded-full bg-white/10"),
			cmp.Attr("aria-hidden", "true"),
		),
		g.Div(
			g.Class("relative container mx-auto px-4 py-24 text-center"),
			g.H1(
				g.Class("text-4xl md:text-5xl font-extrabold mb-4"),
				cmp.Text("Discover Beauty Services Near You"),
			),
			g.P(
				g.Class("text-lg md:text-xl text-pink-100 max-w-2xl mx-auto mb-2"),
				cmp.Text("Salons, spas, makeup artists and more, all in one place."),
			),
			g.P(
				g.Class("text-lg md:text-xl text-pink-100 max-w-2xl mx-auto mb-8"),
				cmp.Text("Compare trusted providers and get in touch with confidence."),
			),
			g.Button(
				g.Type("button"),
				g.Class("inline-block bg-white text-pink-600 font-semibold px-8 py-3 rounded-full shadow-lg hover:bg-pink-50"),
				cmp.Text("Explore Services"),
			),
		),
	)
}
