package ignorefile

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/andebox/andebox/pkg/errors"
)

// CopyExcluding copies the ignore file src to dst, leaving out every line
// that starts with one of the given file names. Lines are copied verbatim,
// without being parsed.
func CopyExcluding(src, dst string, files []string) (dropped int, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "create %s", dst)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = errors.Wrap(errors.ErrCodeInternal, cerr, "close %s", dst)
		}
	}()

	w := bufio.NewWriter(out)
	scanner := newLineScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if hasAnyPrefix(line, files) {
			dropped++
			continue
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			return dropped, errors.Wrap(errors.ErrCodeInternal, err, "write %s", dst)
		}
	}
	if err := scanner.Err(); err != nil {
		return dropped, errors.Wrap(errors.ErrCodeInternal, err, "read %s", src)
	}
	if err := w.Flush(); err != nil {
		return dropped, errors.Wrap(errors.ErrCodeInternal, err, "write %s", dst)
	}
	return dropped, nil
}

// ExcludeFromDir applies CopyExcluding to every ignore file in srcDir,
// writing the results under dstDir. It returns the number of lines dropped
// per file name.
func ExcludeFromDir(srcDir, dstDir string, files []string) (map[string]int, error) {
	names, err := ignoreFiles(srcDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", dstDir)
	}

	dropped := make(map[string]int, len(names))
	for _, name := range names {
		n, err := CopyExcluding(filepath.Join(srcDir, name), filepath.Join(dstDir, name), files)
		if err != nil {
			return nil, err
		}
		dropped[name] = n
	}
	return dropped, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
