package ignorefile

import (
	"regexp"
	"strings"

	"github.com/andebox/andebox/pkg/errors"
)

// entryRE is anchored at both ends: filename, one whitespace, the check
// token, then an optional "# comment" which must not be empty. Trailing
// whitespace is tolerated.
var entryRE = regexp.MustCompile(`^(\S+)\s(\S+)(?:\s+#\s*(\S.*\S|\S))?\s*$`)

// Entry is one parsed line of an ignore file.
type Entry struct {
	Filename string // slash-separated path relative to the collection root
	Check    string // sanity test name, e.g. "validate-modules"
	Subcode  string // optional qualifier after the colon, e.g. "no-default"
	Comment  string // optional trailing annotation, without the "#"
}

// CheckCode returns the check joined with its subcode, as written in the file.
func (e Entry) CheckCode() string {
	if e.Subcode == "" {
		return e.Check
	}
	return e.Check + ":" + e.Subcode
}

// Segments splits the filename into its path components.
func (e Entry) Segments() []string {
	return strings.Split(e.Filename, "/")
}

// FilePart returns the first depth path segments of the filename joined with
// "/". A depth of zero or less, or one that reaches past the last segment,
// yields the whole filename.
func (e Entry) FilePart(depth int) string {
	if depth <= 0 {
		return e.Filename
	}
	parts := e.Segments()
	if depth >= len(parts) {
		return e.Filename
	}
	return strings.Join(parts[:depth], "/")
}

// String rebuilds the entry in ignore-file syntax.
func (e Entry) String() string {
	s := e.Filename + " " + e.CheckCode()
	if e.Comment != "" {
		s += " # " + e.Comment
	}
	return s
}

// Filter selects entries by filename and check. A nil pattern matches
// everything; both patterns must match for an entry to be kept.
type Filter struct {
	Files  *regexp.Regexp
	Checks *regexp.Regexp
}

// NewFilter compiles the filename and check patterns. Empty strings disable
// the corresponding filter.
func NewFilter(files, checks string) (Filter, error) {
	var f Filter
	var err error
	if f.Files, err = compilePattern("filter-files", files); err != nil {
		return Filter{}, err
	}
	if f.Checks, err = compilePattern("filter-checks", checks); err != nil {
		return Filter{}, err
	}
	return f, nil
}

func compilePattern(name, expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "%s: invalid pattern %q", name, expr)
	}
	return re, nil
}

// Match reports whether e passes the filter. Patterns search anywhere in the
// value; the check pattern sees the check without its subcode.
func (f Filter) Match(e Entry) bool {
	if f.Files != nil && !f.Files.MatchString(e.Filename) {
		return false
	}
	if f.Checks != nil && !f.Checks.MatchString(e.Check) {
		return false
	}
	return true
}

// Parse parses a single ignore-file line.
//
// It returns ok=false without error when the line is valid but rejected by f.
// A line that does not follow the entry grammar is a MALFORMED_ENTRY error
// carrying the line text.
func Parse(line string, f Filter) (e Entry, ok bool, err error) {
	m := entryRE.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false, malformed(line)
	}

	check, subcode, _ := strings.Cut(m[2], ":")
	if check == "" {
		return Entry{}, false, malformed(line)
	}

	e = Entry{
		Filename: m[1],
		Check:    check,
		Subcode:  subcode,
		Comment:  m[3],
	}
	if !f.Match(e) {
		return Entry{}, false, nil
	}
	return e, true, nil
}

func malformed(line string) error {
	return errors.New(errors.ErrCodeMalformedEntry, "line cannot be parsed as an ignore-file entry: %q", line)
}
