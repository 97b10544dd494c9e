// Package toxini manages the tox configuration used by "andebox tox-test".
package toxini

import (
	"os"
	"strings"

	"github.com/andebox/andebox/pkg/errors"
)

// DefaultFile is the tox configuration written in the collection root.
const DefaultFile = ".andebox-tox-test.ini"

// DefaultEnvList lists the environments of DefaultConfig.
var DefaultEnvList = []string{"29", "210", "211", "212", "a3", "a4", "a5", "dev"}

// DefaultConfig is written once and never overwritten, so users may edit it.
const DefaultConfig = `; andebox tox-test's tox.ini -- this file is not overwritten by andebox
[tox]
isolated_build = true
envlist = 29, 210, 211, 212, a3, a4, a5, dev
skipsdist = true

[testenv]
passenv = PWD HOME
skip_install = true
allowlist_externals = andebox
deps =
  andebox
  29: ansible>=2.9,<2.10
  210: ansible-base>=2.10,<2.11
  211: ansible-core>=2.11,<2.12
  212: ansible-core>=2.12,<2.13
  a3: ansible>=3.0.0,<4.0.0
  a4: ansible>=4.0.0,<5.0.0
  a5: ansible>=5.0.0,<6.0.0
  dev: https://github.com/ansible/ansible/archive/devel.tar.gz
commands = andebox test -- {posargs}
`

// EnsureFile writes DefaultConfig to path unless a file already exists there.
// It reports whether the file was created.
func EnsureFile(path string) (created bool, err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if os.IsExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if _, err := f.WriteString(DefaultConfig); err != nil {
		f.Close()
		return false, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return true, nil
}

// Options selects what tox runs.
type Options struct {
	ConfigFile string   // tox -c
	List       bool     // tox -a
	Recreate   bool     // tox -r
	Envs       []string // tox -e, comma-joined
	TestArgs   []string // passed to ansible-test after "--"
}

// Args builds the tox command line, without the "tox" executable itself.
func Args(o Options) []string {
	config := o.ConfigFile
	if config == "" {
		config = DefaultFile
	}
	args := []string{"-c", config}
	if o.List {
		args = append(args, "-a")
	}
	if o.Recreate {
		args = append(args, "-r")
	}
	if len(o.Envs) > 0 {
		args = append(args, "-e", strings.Join(o.Envs, ","))
	}
	args = append(args, "--")
	return append(args, o.TestArgs...)
}
