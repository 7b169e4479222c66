// Package theme holds the design tokens shared by the presentation
// components, so colors and sizes are named once instead of repeated as
// literals in output-building code.
package theme

// Color is a CSS color value.
type Color string

// BrandPrimary is the studio's primary brand color.
const BrandPrimary Color = "#452393"

// IconSize is the edge length, in pixels, of inline icons.
const IconSize = 21
