package partials

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"

	"github.com/bbnwebby/beyondbeauty/internal/auth"
	"github.com/bbnwebby/beyondbeauty/internal/site"
)

func parseHTML(t *testing.T, node cmp.Node) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return doc
}

func TestNavbarAnonymous(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, Navbar(auth.State{}))

	brand := doc.Find(`a[href="/"]`).First()
	assert.Equal(t, site.Name, brand.Text())
	assert.Equal(t, 1, doc.Find(`a[href="/contact"]`).Length())
	assert.NotContains(t, doc.Text(), "Hi,")
}

func TestNavbarGreetsVisitor(t *testing.T) {
	t.Parallel()

	t.Run("prefers the name", func(t *testing.T) {
		doc := parseHTML(t, Navbar(auth.State{LoggedIn: true, Email: "priya@example.com", Name: "Priya"}))
		assert.Contains(t, doc.Text(), "Hi, Priya")
	})

	t.Run("falls back to the email", func(t *testing.T) {
		doc := parseHTML(t, Navbar(auth.State{LoggedIn: true, Email: "priya@example.com"}))
		assert.Contains(t, doc.Text(), "Hi, priya@example.com")
	})
}

func TestFooter(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, Footer())

	assert.Equal(t, 1, doc.Find(`a[href="`+site.PhoneHref+`"]`).Length())
	assert.Equal(t, 1, doc.Find(`a[href="`+site.EmailHref+`"]`).Length())
	assert.Equal(t, 1, doc.Find(`a[href="/contact"]`).Length())
	assert.Contains(t, doc.Text(), "All rights reserved")
}
