package violetpress

import (
	"encoding/json"
	"log"
	"net/url"
	pathpkg "path"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/violetpress/violetpress/backend"
)

const (
	metaName    = "meta.json"
	articleName = "article.md"
)

func entryFromMeta(fs backend.Backend, path string) (*Entry, error) {
	ret := Entry{}
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot open meta file: %q", path)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&ret.meta); err != nil {
		return nil, errors.Wrapf(err, "Cannot parse json in: %q", path)
	}
	return &ret, nil
}

func exists(fs backend.Backend, path string) bool {
	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// contentFor picks the renderer for a directory. Explicit Content blocks in
// the meta win; otherwise a directory with an article.md renders that.
func contentFor(fs backend.Backend, dir string, meta Meta) ContentRenderer {
	for _, c := range meta.Content {
		switch c.Type {
		case ContentArticle:
			p := c.Path
			if p == "" {
				p = articleName
			}
			return articleRenderer{fs: fs, mdPath: pathpkg.Join(dir, p), unsafe: meta.Unsafe}
		case ContentTeam:
			p := c.Path
			if p == "" {
				p = teamName
			}
			return newTeamRenderer(fs, pathpkg.Join(dir, p))
		}
	}
	if exists(fs, pathpkg.Join(dir, articleName)) {
		return articleRenderer{fs: fs, mdPath: pathpkg.Join(dir, articleName), unsafe: meta.Unsafe}
	}
	return nil
}

func entryFromDir(fs backend.Backend, path, activepath string) (*Entry, error) {
	ret, err := entryFromMeta(fs, pathpkg.Join(path, metaName))
	if err != nil {
		return nil, err
	}

	ret.link = url.URL{Path: path}
	if strings.HasPrefix(activepath, path) {
		ret.active = true
	}

	ret.render = contentFor(fs, path, ret.meta)
	ret.isarticle = ret.render != nil

	return ret, nil
}

func entriesFromDir(fs backend.Backend, path, activepath string) (Entries, error) {
	dir, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot open directory: %q", path)
	}
	dirlist, err := dir.Readdir(-1)
	dir.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read directory: %q", path)
	}

	var ret Entries
	for _, fi := range dirlist {
		if !fi.IsDir() {
			continue
		}
		entry, err := entryFromDir(fs, pathpkg.Join(path, fi.Name()), activepath)
		if err != nil {
			log.Println(err)
			continue
		}
		if entry.meta.Hidden {
			continue
		}
		ret = append(ret, entry)
	}

	sort.Sort(ret)
	return ret, nil
}

// Page is everything the templates need for one request path.
type Page struct {
	Menu     []Entries
	Articles Entries
	Content  *Entry
	ModTime  time.Time
}

// PageFromDir assembles the page for path, walking from the requested
// directory up to the content root to collect the menu levels.
func PageFromDir(fs backend.Backend, path string) (Page, error) {
	var p Page
	path = pathpkg.Clean("/" + path)
	activepath := path

	// look for an article in the current path
	if c, err := entryFromDir(fs, path, activepath); err == nil && c.IsArticle() {
		p.Content = c
	}

	for {
		entries, err := entriesFromDir(fs, path, activepath)
		if err != nil {
			if path == activepath {
				return Page{}, err
			}
			log.Println(err)
		}
		menu, articles := SplitEntries(entries)
		if len(menu) > 0 {
			sort.Sort(menu)
			p.Menu = append(p.Menu, menu)
		}
		if p.Articles == nil && len(articles) > 0 {
			sort.Sort(articles)
			linkArticles(articles)
			p.Articles = articles
			if p.Content == nil {
				p.Content = articles[0]
			}
		}
		if path == "/" {
			break
		}
		path = pathpkg.Dir(path)
	}

	// built from deepest path to /, need to reverse
	for l, r := 0, len(p.Menu)-1; l < r; l, r = l+1, r-1 {
		p.Menu[l], p.Menu[r] = p.Menu[r], p.Menu[l]
	}

	p.ModTime = contentModTime(fs, p.Content)

	return p, nil
}

// linkArticles wires prev/next across a sorted article list. Articles sort
// newest first, so next points at the newer neighbour.
func linkArticles(articles Entries) {
	for i := range articles {
		if i > 0 {
			articles[i].next = articles[i-1]
		}
		if i < len(articles)-1 {
			articles[i].prev = articles[i+1]
		}
	}
}

func contentModTime(fs backend.Backend, content *Entry) time.Time {
	if content == nil {
		return time.Now()
	}
	f, err := fs.Open(pathpkg.Join(content.link.Path, metaName))
	if err != nil {
		return time.Now()
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return time.Now()
	}
	return stat.ModTime()
}

func init() {
	log.SetFlags(log.Flags() | log.Lshortfile)
}
