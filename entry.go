package violetpress

import (
	"html/template"
	"log"
	"net/url"
	"sync"
	"time"
)

type Entries []*Entry

func (e Entries) Len() int {
	return len(e)
}
func (e Entries) Less(i, j int) bool {
	switch {
	case e[i].meta.IsIndex && !e[j].meta.IsIndex:
		return false
	case !e[i].meta.IsIndex && e[j].meta.IsIndex:
		return true
	case e[i].Priority() != e[j].Priority():
		return e[i].Priority() > e[j].Priority()
	}
	return e[i].Date().After(e[j].Date())
}
func (e Entries) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
}

// Entry is one content directory: its metadata, link and lazily rendered
// body.
type Entry struct {
	meta      Meta
	active    bool
	html      []byte
	isarticle bool
	link      url.URL
	next      *Entry
	prev      *Entry
	once      sync.Once
	render    ContentRenderer
}

func (e *Entry) Active() bool {
	return e.active
}
func (e *Entry) Author() string {
	return e.meta.Author
}
func (e *Entry) Date() time.Time {
	return time.Time(e.meta.Date)
}
func (e *Entry) Desc() string {
	return e.meta.Desc
}

// HTML renders the entry body once and caches it.
func (e *Entry) HTML() template.HTML {
	e.once.Do(func() {
		if e.render == nil {
			return
		}
		var err error
		e.html, err = e.render.Render()
		if err != nil {
			log.Println(err)
		}
	})
	return template.HTML(e.html)
}
func (e *Entry) IsArticle() bool {
	return e.isarticle
}
func (e *Entry) IsIndex() bool {
	return e.meta.IsIndex
}
func (e *Entry) Link() string {
	return e.link.String()
}
func (e *Entry) Priority() int {
	return e.meta.Priority
}
func (e *Entry) Title() string {
	return e.meta.Title
}
func (e *Entry) Next() *Entry {
	return e.next
}
func (e *Entry) Prev() *Entry {
	return e.prev
}

// SplitEntries separates menu entries from articles.
func SplitEntries(e Entries) (Menu, Articles Entries) {
	for _, v := range e {
		if v.IsArticle() {
			Articles = append(Articles, v)
		} else {
			Menu = append(Menu, v)
		}
	}

	return
}
