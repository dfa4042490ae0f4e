package pages

import (
	cmp "maragu.dev/gomponents"

	"github.com/bbnwebby/beyondbeauty/web/src/templates/components"
)

// Home composes the landing page sections: the hero banner followed by
// the provider signup prompt.
func Home() cmp.Node {
	return cmp.Group([]cmp.Node{
		components.Hero(),
		components.JoinCTA(),
	})
}
