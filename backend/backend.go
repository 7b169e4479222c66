// Package backend abstracts the source of site content. A backend is any
// http.FileSystem, whether a plain directory or a git commit tree.
package backend

import "net/http"

type Backend interface {
	http.FileSystem
}
