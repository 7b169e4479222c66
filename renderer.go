package violetpress

import (
	"bytes"
	"io/ioutil"

	"github.com/pkg/errors"

	bm "github.com/microcosm-cc/bluemonday"
	bf "github.com/russross/blackfriday"

	"github.com/violetpress/violetpress/backend"
	"github.com/violetpress/violetpress/components"
	"github.com/violetpress/violetpress/markup"
	"github.com/violetpress/violetpress/team"
	"github.com/violetpress/violetpress/theme"
)

const teamName = "team.yaml"

// ContentRenderer produces the HTML body of one entry.
type ContentRenderer interface {
	Render() ([]byte, error)
}

type articleRenderer struct {
	fs     backend.Backend
	mdPath string
	unsafe bool
}

func (a articleRenderer) Render() ([]byte, error) {
	md, err := a.fs.Open(a.mdPath)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot open markdown file: %q", a.mdPath)
	}
	defer md.Close()

	b, err := ioutil.ReadAll(md)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read markdown file: %q", a.mdPath)
	}
	html := bf.Markdown(b,
		imageAltTitle{
			bf.HtmlRenderer(0, "", ""),
		}, bf.EXTENSION_TABLES)
	if !a.unsafe {
		html = bm.UGCPolicy().SanitizeBytes(html)
	}
	return html, nil
}

// teamRenderer renders the member roster as a list, one profile link per
// member. Handles pass through the link renderer untouched.
type teamRenderer struct {
	fs   backend.Backend
	path string
	link components.ProfileLink
}

func newTeamRenderer(fs backend.Backend, path string) teamRenderer {
	return teamRenderer{
		fs:   fs,
		path: path,
		link: components.NewProfileLink(theme.BrandPrimary),
	}
}

func (t teamRenderer) Render() ([]byte, error) {
	members, err := team.Load(t.fs, t.path)
	if err != nil {
		return nil, err
	}

	items := make([]markup.Node, 0, len(members))
	for _, m := range members {
		items = append(items, markup.El("li",
			[]markup.Attr{{Key: "class", Value: "team-member"}},
			markup.El("span", []markup.Attr{{Key: "class", Value: "team-name"}}, markup.Text(m.Name)),
			markup.El("span", []markup.Attr{{Key: "class", Value: "team-role"}}, markup.Text(m.Role)),
			t.link.Render(components.ProfileLinkConfig{Identifier: m.GitHub}),
		))
	}
	list := markup.El("ul", []markup.Attr{{Key: "class", Value: "team"}}, items...)

	buf := bytes.Buffer{}
	if err := list.WriteHTML(&buf); err != nil {
		return nil, errors.Wrapf(err, "Cannot render roster: %q", t.path)
	}
	return buf.Bytes(), nil
}
