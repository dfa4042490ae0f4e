package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/bbnwebby/beyondbeauty/internal/site"
)

// JoinCTA renders the provider signup prompt shown below the hero. Like
// the hero button, the call-to-action is inert until a signup flow is
// wired up.
func JoinCTA() cmp.Node {
	return g.Section(
		g.Class("bg-pink-50 border-y border-pink-100"),
		g.Div(
			g.Class("container mx-auto px-4 py-16 text-center"),
			g.H2(
				g.Class("text-3xl font-extrabold text-gray-900 mb-3"),
				cmp.Text("Are You a Beauty Professional?"),
			),
			g.P(
				g.Class("text-gray-600 max-w-xl mx-auto mb-6"),
				cmp.Text("List your salon, spa or studio on "+site.Name+" and reach new clients every day."),
			),
			g.Button(
				g.Type("button"),
				g.Class("bg-pink-600 text-white font-semibold px-8 py-3 rounded-full shadow hover:bg-pink-700"),
				cmp.Text("Join as a Provider"),
			),
		),
	)
}
