package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violetpress/violetpress/markup"
	"github.com/violetpress/violetpress/theme"
)

func TestProfileLinkTarget(t *testing.T) {
	link := NewProfileLink(theme.BrandPrimary)

	tests := []struct {
		name       string
		identifier string
		want       string
	}{
		{"handle", "octocat", "https://github.com/octocat"},
		{"empty", "", "https://github.com/"},
		{"path separator", "a/b", "https://github.com/a/b"},
		{"whitespace", "two words", "https://github.com/two words"},
		{"url metacharacters", "a?b#c", "https://github.com/a?b#c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := link.Render(ProfileLinkConfig{Identifier: tt.identifier})
			require.Equal(t, markup.KindElement, n.Kind)
			require.Equal(t, "a", n.Tag)
			href, ok := n.Attr("href")
			require.True(t, ok)
			assert.Equal(t, tt.want, href)
		})
	}
}

func TestProfileLinkMarkInvariant(t *testing.T) {
	link := NewProfileLink(theme.BrandPrimary)

	for _, identifier := range []string{"octocat", "", "a/b"} {
		n := link.Render(ProfileLinkConfig{Identifier: identifier})
		require.Len(t, n.Children, 1)
		svg := n.Children[0]
		require.Equal(t, "svg", svg.Tag)

		for key, want := range map[string]string{
			"width":   "21",
			"height":  "21",
			"viewBox": "0 0 21 21",
		} {
			got, ok := svg.Attr(key)
			require.True(t, ok, key)
			assert.Equal(t, want, got, key)
		}

		require.Len(t, svg.Children, 2)
		for _, path := range svg.Children {
			assert.Equal(t, "path", path.Tag)
			fill, ok := path.Attr("fill")
			require.True(t, ok)
			assert.Equal(t, "#452393", fill)
			d, ok := path.Attr("d")
			require.True(t, ok)
			assert.NotEmpty(t, d)
		}
	}
}

func TestProfileLinkIdempotent(t *testing.T) {
	link := NewProfileLink(theme.BrandPrimary)
	cfg := ProfileLinkConfig{Identifier: "octocat"}

	assert.Equal(t, link.Render(cfg), link.Render(cfg))
}

func TestProfileLinkPure(t *testing.T) {
	link := NewProfileLink(theme.BrandPrimary)
	cfg := ProfileLinkConfig{Identifier: "octocat"}

	pristine := link.Render(cfg)
	mutated := link.Render(cfg)
	mutated.Attrs[0].Value = "clobbered"
	mutated.Children[0].Attrs[0].Value = "0"

	assert.Equal(t, pristine, link.Render(cfg))
}

func TestProfileLinkSerializedPassThrough(t *testing.T) {
	link := NewProfileLink(theme.BrandPrimary)

	html := link.Render(ProfileLinkConfig{Identifier: "a/b"}).String()
	assert.True(t, strings.Contains(html, `href="https://github.com/a/b"`), html)
	assert.True(t, strings.Contains(html, `viewBox="0 0 21 21"`), html)
}
