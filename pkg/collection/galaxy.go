// Package collection reads Ansible collection metadata: galaxy.yml for the
// collection identity and meta/runtime.yml for plugin routing.
package collection

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andebox/andebox/pkg/errors"
)

// GalaxyFile is the collection manifest, relative to the collection root.
const GalaxyFile = "galaxy.yml"

// Galaxy holds the fields of galaxy.yml that andebox uses.
type Galaxy struct {
	Namespace string `yaml:"namespace"`
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
}

// FQCN returns the fully qualified collection name, e.g. "community.general".
func (g Galaxy) FQCN() string {
	return g.Namespace + "." + g.Name
}

// ReadGalaxy reads galaxy.yml from the collection root dir.
func ReadGalaxy(dir string) (*Galaxy, error) {
	path := filepath.Join(dir, GalaxyFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found, is this a collection root?", GalaxyFile)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	var g Galaxy
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "parse %s", path)
	}
	if err := errors.ValidateCollectionName("namespace", g.Namespace); err != nil {
		return nil, err
	}
	if err := errors.ValidateCollectionName("name", g.Name); err != nil {
		return nil, err
	}
	return &g, nil
}

// Determine resolves the collection namespace and name. A non-empty arg in
// "namespace.name" form wins; otherwise galaxy.yml in dir is read.
func Determine(arg, dir string) (namespace, name string, err error) {
	if arg == "" {
		g, err := ReadGalaxy(dir)
		if err != nil {
			return "", "", err
		}
		return g.Namespace, g.Name, nil
	}

	i := strings.LastIndex(arg, ".")
	if i < 0 {
		return "", "", errors.New(errors.ErrCodeInvalidInput, "collection %q must be in the form namespace.name", arg)
	}
	namespace, name = arg[:i], arg[i+1:]
	if err := errors.ValidateCollectionName("namespace", namespace); err != nil {
		return "", "", err
	}
	if err := errors.ValidateCollectionName("name", name); err != nil {
		return "", "", err
	}
	return namespace, name, nil
}
