package violetpress

import (
	"bytes"

	bf "github.com/russross/blackfriday"
)

// imageAltTitle mirrors a missing image title from the alt text and vice
// versa, so captions stay usable however the article was authored.
type imageAltTitle struct {
	bf.Renderer
}

func (md imageAltTitle) Image(out *bytes.Buffer, link []byte, title []byte, alt []byte) {
	if title == nil {
		title = alt
	}
	if alt == nil {
		alt = title
	}
	md.Renderer.Image(out, link, title, alt)
}
