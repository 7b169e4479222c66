package violetpress

import (
	"net/http"
	pathpkg "path"
)

// StaticHandler behaves like http.ServeContent without directory listings.
// It also implements the http.FileSystem interface.
type StaticHandler struct {
	fs     http.FileSystem
	prefix string
}

// Serve the file requested by r. Error 404 on directory access.
func (sh StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f, err := sh.Open(r.URL.Path)
	if err != nil {
		http.Error(w, r.URL.Path, http.StatusNotFound)
		return
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		http.Error(w, r.URL.Path, http.StatusInternalServerError)
		return
	}
	if stat.IsDir() {
		http.Error(w, r.URL.Path, http.StatusNotFound)
		return
	}
	http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
}

// Cd returns a new StaticHandler rooted below path.
func (sh StaticHandler) Cd(path string) StaticHandler {
	path = pathpkg.Clean(path)
	sh.prefix = pathpkg.Join(sh.prefix, path)
	return sh
}

// Open implements the http.FileSystem interface.
func (sh StaticHandler) Open(name string) (http.File, error) {
	name = pathpkg.Clean(name)
	return sh.fs.Open(pathpkg.Join(sh.prefix, name))
}

// NewStaticHandler serves all files from fs.
func NewStaticHandler(fs http.FileSystem) StaticHandler {
	return StaticHandler{fs: fs}
}
