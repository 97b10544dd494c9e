package ignorefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/andebox/andebox/pkg/errors"
)

const (
	// SanityDir is where ignore files live, relative to the collection root.
	SanityDir = "tests/sanity"

	// Stdin is the version token that selects standard input.
	Stdin = "-"

	// maxLineSize bounds a single ignore-file line.
	maxLineSize = 16 << 20

	filePrefix = "ignore-"
	fileSuffix = ".txt"
)

// FileName returns the ignore file name for an ansible version, e.g.
// "ignore-2.12.txt".
func FileName(version string) string {
	return filePrefix + version + fileSuffix
}

// IsIgnoreFile reports whether name follows the ignore-<version>.txt convention.
func IsIgnoreFile(name string) bool {
	return len(name) > len(filePrefix)+len(fileSuffix) &&
		strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileSuffix)
}

// VersionOf extracts the version token from an ignore file name.
func VersionOf(name string) string {
	return strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
}

// Source is a named, not yet opened, text stream of ignore entries.
type Source struct {
	Name string
	open func() (io.ReadCloser, error)
}

// FileSource returns a source reading the file at path.
func FileSource(path string) Source {
	return Source{
		Name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// ReaderSource returns a source reading r. The reader is never closed.
func ReaderSource(name string, r io.Reader) Source {
	return Source{
		Name: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// Sources resolves a version token into the ignore-file sources to read:
//
//   - Stdin ("-"): a single source reading stdin.
//   - "": every ignore-*.txt in dir, in directory order. A missing directory
//     yields no sources and no error.
//   - anything else: the single file ignore-<version>.txt in dir, which must
//     exist.
func Sources(dir, version string, stdin io.Reader) ([]Source, error) {
	switch version {
	case Stdin:
		return []Source{ReaderSource("<stdin>", stdin)}, nil
	case "":
		return dirSources(dir)
	}

	if err := errors.ValidateVersion(version); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, FileName(version))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "ignore file %s not found", FileName(version))
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "stat %s", path)
	}
	return []Source{FileSource(path)}, nil
}

func dirSources(dir string) ([]Source, error) {
	names, err := ignoreFiles(dir)
	if err != nil {
		return nil, err
	}
	sources := make([]Source, 0, len(names))
	for _, name := range names {
		sources = append(sources, FileSource(filepath.Join(dir, name)))
	}
	return sources, nil
}

// ignoreFiles lists the ignore file names in dir, in os.ReadDir order.
func ignoreFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read directory %s", dir)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && IsIgnoreFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Versions returns the versions of the ignore files found in dir, oldest
// first. Tokens that are valid semantic versions once prefixed with "v"
// ("2.9", "2.10") sort numerically; anything else sorts lexically after them.
func Versions(dir string) ([]string, error) {
	names, err := ignoreFiles(dir)
	if err != nil {
		return nil, err
	}
	versions := make([]string, 0, len(names))
	for _, name := range names {
		versions = append(versions, VersionOf(name))
	}
	slices.SortFunc(versions, compareVersions)
	return versions, nil
}

func compareVersions(a, b string) int {
	va, vb := "v"+a, "v"+b
	okA, okB := semver.IsValid(va), semver.IsValid(vb)
	switch {
	case okA && okB:
		if c := semver.Compare(va, vb); c != 0 {
			return c
		}
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(a, b)
}

// Read opens the source, parses every line and closes it again, also when
// parsing fails. The first malformed line aborts the read; the error names
// the source and the 1-based line number.
func (s Source) Read(f Filter) ([]Entry, error) {
	rc, err := s.open()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", s.Name)
	}
	defer rc.Close()

	var entries []Entry
	scanner := newLineScanner(rc)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		e, ok, err := Parse(scanner.Text(), f)
		if err != nil {
			return nil, errors.New(errors.GetCode(err), "%s:%d: %s", s.Name, lineNo, errors.UserMessage(err))
		}
		if ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", s.Name)
	}
	return entries, nil
}

// newLineScanner splits r into lines of up to maxLineSize bytes.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// ReadAll reads every source in order and concatenates the entries.
func ReadAll(sources []Source, f Filter) ([]Entry, error) {
	var all []Entry
	for _, s := range sources {
		entries, err := s.Read(f)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

// String implements fmt.Stringer.
func (s Source) String() string {
	return fmt.Sprintf("<Source: %s>", s.Name)
}
