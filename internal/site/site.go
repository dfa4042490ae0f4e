// Package site holds the compile-time identity of the Beyond Beauty
// Network website: branding, SEO defaults and the contact record. All
// values are literals; nothing here is computed at runtime.
package site

const (
	Name        = "Beyond Beauty Network"
	Tagline     = "Find trusted salons, spas and beauty professionals near you."
	Description = "Beyond Beauty Network is a directory of verified salons, spas, makeup artists and beauty professionals across India. Discover services, compare providers and get in touch directly."

	// BaseURL is the canonical origin used for head metadata and the
	// sitemap. A deployment can override it via APP_BASE_URL.
	BaseURL = "https://beyondbeautynetwork.in"

	// ThemeColor is the brand pink emitted as the theme-color meta tag.
	ThemeColor = "#ec4899"

	Publisher = "Multai Group"
)

// Keywords feed the keywords meta tag on every page.
var Keywords = []string{
	"beauty services",
	"salon",
	"spa",
	"makeup artist",
	"bridal makeup",
	"beauty directory",
	"India",
}

// Contact record. The href values are the exact link targets the pages
// emit; the display values are what visitors read.
const (
	Phone     = "+91 79955 14547"
	PhoneHref = "tel:+917995514547"

	WhatsAppURL = "https://wa.me/917995514547"

	Email     = "infomultaigroup@gmail.com"
	EmailHref = "mailto:infomultaigroup@gmail.com"

	Hours = "Mon - Sat: 9:00 AM - 8:00 PM, Sun: 10:00 AM - 6:00 PM"

	MapEmbedURL = "https://www.google.com/maps?q=Multai,+Madhya+Pradesh&output=embed"
)
