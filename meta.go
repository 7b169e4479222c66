package violetpress

import (
	"strings"
	"time"
)

// Meta is the per-directory metadata read from meta.json.
type Meta struct {
	Author string
	Date   VPTime
	Title  string
	Desc   string `json:",omitempty"`

	Priority int
	Hidden   bool      `json:",omitempty"`
	Unsafe   bool      `json:",omitempty"`
	IsIndex  bool      `json:",omitempty"`
	Content  []Content `json:",omitempty"`
}

const (
	ContentArticle = "article"
	ContentTeam    = "team"
)

// Content selects an alternative content source for a page. Without any
// Content blocks a directory renders its article.md.
type Content struct {
	Type string
	Path string `json:",omitempty"`
}

// VPTime is time.Time with the site's JSON layout.
type VPTime time.Time

const VPTimeLayout = "2006-01-02 15:04"

func (t *VPTime) UnmarshalJSON(b []byte) error {
	tmp, err := time.Parse(VPTimeLayout, strings.Trim(string(b), "\""))
	*t = VPTime(tmp)
	return err
}

func (t VPTime) String() string {
	return time.Time(t).Format(VPTimeLayout)
}

func (t VPTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}
