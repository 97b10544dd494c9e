// Package config loads the optional per-collection andebox configuration.
//
// The file lives in the collection root as .andebox.toml and only changes
// flag defaults; flags given on the command line always win.
//
//	[ignores]
//	head = 20
//	depth = 3
//	dir = "tests/sanity"   # where the ignore files live, relative to the root
//
//	[test]
//	keep = true
//
//	[tox]
//	config = "tox-andebox.ini"
//	envlist = ["211", "dev"]
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/andebox/andebox/pkg/errors"
)

const (
	// FileName is the configuration file looked up in the collection root.
	FileName = ".andebox.toml"

	// EnvVar names an explicit configuration file, which must exist.
	EnvVar = "ANDEBOX_CONFIG"

	// DefaultHead is the number of report lines shown by default.
	DefaultHead = 10
)

// Config holds flag defaults per command.
type Config struct {
	Ignores Ignores `toml:"ignores"`
	Test    Test    `toml:"test"`
	Tox     Tox     `toml:"tox"`
}

// Ignores holds defaults for "andebox ignores".
type Ignores struct {
	Head  int    `toml:"head"`
	Depth int    `toml:"depth"`
	Dir   string `toml:"dir"` // ignore-file directory; empty means tests/sanity
}

// Test holds defaults for "andebox test".
type Test struct {
	Keep bool `toml:"keep"`
}

// Tox holds defaults for "andebox tox-test".
type Tox struct {
	Config  string   `toml:"config"`
	EnvList []string `toml:"envlist"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Ignores: Ignores{Head: DefaultHead},
	}
}

// Result is a loaded configuration and where it came from.
type Result struct {
	Config
	Path      string   // file read, empty when only defaults apply
	Undecoded []string // keys present in the file but not understood
}

// Load reads the configuration for the collection rooted at dir. The file
// named by ANDEBOX_CONFIG is used when set; otherwise dir/.andebox.toml is
// read if present. Missing optional files yield the defaults.
func Load(dir string) (*Result, error) {
	res := &Result{Config: Default()}

	path, required := os.Getenv(EnvVar), true
	if path == "" {
		path, required = filepath.Join(dir, FileName), false
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return res, nil
		}
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	md, err := toml.DecodeFile(path, &res.Config)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config file %s", path)
	}
	res.Path = path
	for _, k := range md.Undecoded() {
		res.Undecoded = append(res.Undecoded, k.String())
	}
	return res, nil
}
