package pages

import (
	cmp "maragu.dev/gomponents"

	"github.com/bbnwebby/beyondbeauty/web/src/templates/components"
)

// Contact is the contact page content.
func Contact() cmp.Node {
	return components.ContactPanel()
}
