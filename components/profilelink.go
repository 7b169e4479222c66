// Package components holds the shared presentation components consumed by
// the page templates. Components are pure: they turn a configuration value
// into a markup tree and nothing else.
package components

import (
	"strconv"

	"github.com/violetpress/violetpress/markup"
	"github.com/violetpress/violetpress/theme"
)

// ProfileURLPrefix is the base every rendered profile link points at.
const ProfileURLPrefix = "https://github.com/"

// The mark is drawn on a 21x21 grid as two filled shapes: the circular
// silhouette and the cut-out detail below it.
const (
	markBodyPath = "M10.5 1.31c-5.1 0-9.24 4.14-9.24 9.24 0 4.08 2.65 7.55 6.32 8.77.46.09.63-.2.63-.45v-1.56c-2.57.56-3.11-1.24-3.11-1.24-.42-1.07-1.03-1.35-1.03-1.35-.84-.58.06-.57.06-.57.93.07 1.42.96 1.42.96.83 1.42 2.17 1.01 2.7.77.08-.6.32-1.01.59-1.24-2.06-.23-4.22-1.03-4.22-4.58 0-1.01.36-1.84.95-2.48-.09-.24-.41-1.18.09-2.45 0 0 .78-.25 2.55.95.74-.21 1.53-.31 2.32-.31.79 0 1.58.1 2.32.31 1.77-1.2 2.54-.95 2.54-.95.51 1.27.19 2.21.1 2.45.59.64.95 1.47.95 2.48 0 3.56-2.17 4.34-4.23 4.57.33.29.63.85.63 1.72v2.54c0 .25.17.54.64.45 3.67-1.23 6.31-4.69 6.31-8.77 0-5.1-4.14-9.24-9.24-9.24z"
	markTailPath = "M5.03 14.58c-.02.05-.09.06-.16.03-.07-.04-.11-.1-.09-.15.02-.05.09-.06.16-.03.07.04.11.1.09.15zm.39.43c-.04.04-.13.02-.19-.05-.06-.07-.07-.16-.02-.2.05-.04.13-.02.19.05.06.07.07.16.02.2z"
)

// ProfileLinkConfig configures a single render call.
type ProfileLinkConfig struct {
	// Identifier is the external profile handle. It is embedded in the
	// link target verbatim; callers supply values that are safe to use
	// as a URL path segment.
	Identifier string
}

// ProfileLink renders a team member's external profile handle as a link
// decorated with the profile mark. The zero value is not usable; construct
// with NewProfileLink.
type ProfileLink struct {
	fill theme.Color
}

// NewProfileLink returns a renderer that fills the mark with the given
// token. Sites pass theme.BrandPrimary.
func NewProfileLink(fill theme.Color) ProfileLink {
	return ProfileLink{fill: fill}
}

// Render builds the link node for one configuration. It never fails and has
// no side effects; the identifier is concatenated onto ProfileURLPrefix
// without validation or escaping, and the embedded mark is identical for
// every call.
func (p ProfileLink) Render(cfg ProfileLinkConfig) markup.Node {
	return markup.El("a",
		[]markup.Attr{
			{Key: "href", Value: ProfileURLPrefix + cfg.Identifier},
			{Key: "class", Value: "profile-link"},
		},
		p.mark(),
	)
}

func (p ProfileLink) mark() markup.Node {
	size := strconv.Itoa(theme.IconSize)
	return markup.El("svg",
		[]markup.Attr{
			{Key: "width", Value: size},
			{Key: "height", Value: size},
			{Key: "viewBox", Value: "0 0 " + size + " " + size},
		},
		markup.El("path", []markup.Attr{
			{Key: "d", Value: markBodyPath},
			{Key: "fill", Value: string(p.fill)},
		}),
		markup.El("path", []markup.Attr{
			{Key: "d", Value: markTailPath},
			{Key: "fill", Value: string(p.fill)},
		}),
	)
}
