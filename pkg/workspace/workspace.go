// Package workspace builds the temporary ansible_collections tree that
// ansible-test requires: <tmp>/ansible_collections/<namespace>/<name>.
package workspace

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/andebox/andebox/pkg/errors"
)

// CollectionsPathEnv is the environment variable ansible uses to locate
// collections.
const CollectionsPathEnv = "ANSIBLE_COLLECTIONS_PATH"

// Workspace is a scratch collection tree. Close removes it unless it was
// created with keep set.
type Workspace struct {
	Root          string // temporary top directory
	CollectionDir string // Root/ansible_collections/<namespace>/<name>
	keep          bool
	logger        *log.Logger
}

// New creates the scratch tree for namespace.name.
func New(namespace, name string, keep bool, logger *log.Logger) (*Workspace, error) {
	if logger == nil {
		logger = log.Default()
	}
	root, err := os.MkdirTemp("", "andebox.")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create temporary directory")
	}
	dir := filepath.Join(root, "ansible_collections", namespace, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		_ = os.RemoveAll(root)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
	}

	logger.Info("Created workspace", "collection", namespace+"."+name, "directory", dir)
	return &Workspace{Root: root, CollectionDir: dir, keep: keep, logger: logger}, nil
}

// Populate copies the collection found in src into the workspace.
func (w *Workspace) Populate(src string) error {
	return CopyTree(src, w.CollectionDir)
}

// CollectionsPath returns the ANSIBLE_COLLECTIONS_PATH value with the
// workspace root in front of the current one.
func (w *Workspace) CollectionsPath() string {
	current := os.Getenv(CollectionsPathEnv)
	if current == "" {
		return w.Root
	}
	return w.Root + string(os.PathListSeparator) + current
}

// Env returns the environment for tools run inside the workspace.
func (w *Workspace) Env() []string {
	return append(os.Environ(), CollectionsPathEnv+"="+w.CollectionsPath())
}

// Close removes the workspace, or logs where it was kept.
func (w *Workspace) Close() error {
	if w.keep {
		w.logger.Info("Keeping temporary directory", "directory", w.CollectionDir)
		return nil
	}
	w.logger.Info("Removing temporary directory", "directory", w.CollectionDir)
	if err := os.RemoveAll(w.Root); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "remove %s", w.Root)
	}
	return nil
}

// CopyTree copies every top-level entry of src whose name does not start
// with a dot into dst, recursing into directories. Symlinks are recreated,
// not followed.
func CopyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "read %s", src)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if err := copyPath(filepath.Join(src, e.Name()), filepath.Join(dst, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyPath(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0755)
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			return copyFile(path, target)
		}
	})
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
