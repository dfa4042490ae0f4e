package layouts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/bbnwebby/beyondbeauty/internal/auth"
	"github.com/bbnwebby/beyondbeauty/internal/site"
	"github.com/bbnwebby/beyondbeauty/internal/view"
)

const testBaseURL = "https://beyondbeautynetwork.in"

func renderBase(t *testing.T, meta view.PageMeta, state auth.State, content cmp.Node) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Base(testBaseURL, meta, state, content).Render(&buf))
	return buf.String()
}

func parseHTML(t *testing.T, body string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestBaseOrdering(t *testing.T) {
	t.Parallel()

	body := renderBase(t, view.PageMeta{}, auth.State{}, g.P(cmp.Text("content")))

	header := strings.Index(body, "<header")
	spacer := strings.Index(body, `aria-hidden="true"`)
	main := strings.Index(body, "<main")
	footer := strings.Index(body, "<footer")

	require.GreaterOrEqual(t, header, 0, "navigation must be present")
	require.GreaterOrEqual(t, main, 0, "main region must be present")
	require.GreaterOrEqual(t, footer, 0, "footer must be present")

	assert.Less(t, header, spacer, "navigation renders before the spacer")
	assert.Less(t, spacer, main, "spacer renders before the main region")
	assert.Less(t, main, footer, "main region renders before the footer")
}

func TestBaseEmptyChildren(t *testing.T) {
	t.Parallel()

	// An empty child tree must still produce the full chrome.
	body := renderBase(t, view.PageMeta{}, auth.State{}, cmp.Group(nil))
	doc := parseHTML(t, body)

	assert.Equal(t, 1, doc.Find("header").Length())
	assert.Equal(t, 1, doc.Find("main").Length())
	assert.Equal(t, 1, doc.Find("footer").Length())
	assert.Empty(t, strings.TrimSpace(doc.Find("main").Text()))
}

func TestBaseSpacerMatchesNavbarHeight(t *testing.T) {
	t.Parallel()

	body := renderBase(t, view.PageMeta{}, auth.State{}, cmp.Group(nil))
	doc := parseHTML(t, body)

	navClass := doc.Find("header").AttrOr("class", "")
	assert.Contains(t, navClass, "fixed")
	assert.Contains(t, navClass, "h-16")

	spacer := doc.Find(`body > div[aria-hidden="true"]`)
	require.Equal(t, 1, spacer.Length(), "exactly one spacer directly under body")
	assert.Contains(t, spacer.AttrOr("class", ""), "h-16", "spacer height must match the navbar height")
}

func TestBaseTitleTemplate(t *testing.T) {
	t.Parallel()

	t.Run("root page", func(t *testing.T) {
		doc := parseHTML(t, renderBase(t, view.PageMeta{}, auth.State{}, cmp.Group(nil)))
		assert.Equal(t, "Beyond Beauty Network", doc.Find("title").Text())
	})

	t.Run("nested page", func(t *testing.T) {
		doc := parseHTML(t, renderBase(t, view.PageMeta{Title: "Contact", Path: "/contact"}, auth.State{}, cmp.Group(nil)))
		assert.Equal(t, "Contact | Beyond Beauty Network", doc.Find("title").Text())
	})
}

func TestBaseHeadMetadata(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderBase(t, view.PageMeta{}, auth.State{}, cmp.Group(nil)))

	metaContent := func(sel string) string {
		return doc.Find(sel).AttrOr("content", "")
	}

	assert.Equal(t, "#ec4899", metaContent(`meta[name="theme-color"]`))
	assert.Equal(t, "index, follow", metaContent(`meta[name="robots"]`))
	assert.Equal(t, site.Publisher, metaContent(`meta[name="author"]`))
	assert.NotEmpty(t, metaContent(`meta[name="description"]`))
	assert.Contains(t, metaContent(`meta[name="keywords"]`), "beauty services")

	assert.Equal(t, testBaseURL, doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, "website", metaContent(`meta[property="og:type"]`))
	assert.Equal(t, site.Name, metaContent(`meta[property="og:site_name"]`))
	assert.Equal(t, "Beyond Beauty Network", metaContent(`meta[property="og:title"]`))
	assert.Equal(t, testBaseURL, metaContent(`meta[property="og:url"]`))

	jsonLD := doc.Find(`script[type="application/ld+json"]`).Text()
	assert.Contains(t, jsonLD, "schema.org")
	assert.Contains(t, jsonLD, site.Name)

	assert.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
}

func TestBaseNestedPageCanonical(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderBase(t, view.PageMeta{Title: "Contact", Path: "/contact"}, auth.State{}, cmp.Group(nil)))

	assert.Equal(t, testBaseURL+"/contact", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, testBaseURL+"/contact", doc.Find(`meta[property="og:url"]`).AttrOr("content", ""))
}

func TestBaseShowsGreetingForLoggedInVisitor(t *testing.T) {
	t.Parallel()

	state := auth.State{LoggedIn: true, Email: "priya@example.com", Name: "Priya"}
	body := renderBase(t, view.PageMeta{}, state, cmp.Group(nil))

	assert.Contains(t, body, "Hi, Priya")

	anon := renderBase(t, view.PageMeta{}, auth.State{}, cmp.Group(nil))
	assert.NotContains(t, anon, "Hi,")
}
