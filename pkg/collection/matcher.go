package collection

import (
	"path"
	"regexp"
	"strings"

	"github.com/andebox/andebox/pkg/errors"
)

// Matcher decides whether a plugin name from runtime.yml was asked for.
type Matcher interface {
	Match(name string) bool
}

type exactMatcher struct{ want string }

// ExactMatcher matches plugin names equal to name. A file path such as
// "plugins/modules/foo.py" is reduced to its plugin name "foo" first.
func ExactMatcher(name string) Matcher {
	if strings.HasSuffix(name, ".py") {
		name = path.Base(name)
		name, _, _ = strings.Cut(name, ".")
	}
	return exactMatcher{want: name}
}

func (m exactMatcher) Match(name string) bool { return name == m.want }

type patternMatcher struct{ re *regexp.Regexp }

// PatternMatcher matches plugin names containing a match of expr.
func PatternMatcher(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "invalid plugin name pattern %q", expr)
	}
	return patternMatcher{re: re}, nil
}

func (m patternMatcher) Match(name string) bool { return m.re.MatchString(name) }

// Matchers builds one matcher per name, as patterns when regex is set.
func Matchers(names []string, regex bool) ([]Matcher, error) {
	ms := make([]Matcher, 0, len(names))
	for _, n := range names {
		if !regex {
			ms = append(ms, ExactMatcher(n))
			continue
		}
		m, err := PatternMatcher(n)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func matchAny(ms []Matcher, name string) bool {
	for _, m := range ms {
		if m.Match(name) {
			return true
		}
	}
	return false
}
