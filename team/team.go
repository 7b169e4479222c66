// Package team loads the member roster authored alongside the site content.
package team

import (
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Member is one roster entry. Members arrive fully resolved from the
// content tree; nothing is fetched.
type Member struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role,omitempty"`
	GitHub string `yaml:"github"`
}

type roster struct {
	Members []Member `yaml:"members"`
}

// Load reads a roster file from the content backend.
func Load(fs http.FileSystem, path string) ([]Member, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot open roster file: %q", path)
	}
	defer f.Close()

	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read roster file: %q", path)
	}

	var r roster
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, errors.Wrapf(err, "Cannot parse roster file: %q", path)
	}
	return r.Members, nil
}
