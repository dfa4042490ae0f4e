package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/bbnwebby/beyondbeauty/internal/site"
)

// ContactPanel renders the four contact cards and the embedded map. Every
// value comes from the compile-time contact record in the site package,
// so repeated renders produce identical bytes.
func ContactPanel() cmp.Node {
	return g.Section(
		g.Class("container mx-auto px-4 py-16"),
		g.H2(
			g.Class("text-3xl font-extrabold text-center text-gray-900 mb-10"),
			cmp.Text("Get in Touch"),
		),
		g.Div(
			g.Class("grid gap-6 grid-cols-1 md:grid-cols-2 lg:grid-cols-4 mb-10"),
			contactCard("📞", "Call Us",
				g.A(
					g.Href(site.PhoneHref),
					g.Class("text-pink-600 hover:underline"),
					cmp.Text(site.Phone),
				),
			),
			// The WhatsApp card is a button-styled link: the action is the
			// point, not informational text.
			contactCard("💬", "WhatsApp",
				g.A(
					g.Href(site.WhatsAppURL),
					g.Target("_blank"),
					g.Rel("noopener"),
					g.Class("inline-block bg-green-500 text-white text-sm font-semibold px-5 py-2 rounded-full hover:bg-green-600"),
					cmp.Text("Chat on WhatsApp"),
				),
			),
			contactCard("✉️", "Email",
				g.A(
					g.Href(site.EmailHref),
					g.Class("text-pink-600 hover:underline break-all"),
					cmp.Text(site.Email),
				),
			),
			contactCard("🕒", "Working Hours",
				g.P(
					g.Class("text-gray-600 text-sm"),
					cmp.Text(site.Hours),
				),
			),
		),
		g.Div(
			g.Class("rounded-xl overflow-hidden shadow-lg"),
			g.IFrame(
				g.Src(site.MapEmbedURL),
				g.Width("100%"),
				g.Height("350"),
				g.Loading("lazy"),
				g.Title("Beyond Beauty Network on the map"),
				cmp.Attr("allowfullscreen"),
				cmp.Attr("referrerpolicy", "no-referrer-when-downgrade"),
			),
		),
	)
}

func contactCard(icon, label string, value cmp.Node) cmp.Node {
	return g.Div(
		g.Class("contact-card bg-white rounded-xl shadow p-6 text-center"),
		g.Div(g.Class("text-3xl mb-3"), cmp.Text(icon)),
		g.H3(g.Class("font-bold text-gray-900 mb-2"), cmp.Text(label)),
		value,
	)
}
