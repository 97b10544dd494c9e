package collection

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andebox/andebox/pkg/errors"
)

// RuntimeFile is the plugin routing table, relative to the collection root.
const RuntimeFile = "meta/runtime.yml"

// PluginTypes lists the plugin routing sections searched by default, in
// output order.
var PluginTypes = []string{
	"connection",
	"lookup",
	"modules",
	"doc_fragments",
	"module_utils",
	"callback",
	"inventory",
}

// Notice is a tombstone or deprecation record.
type Notice struct {
	RemovalVersion string `yaml:"removal_version"`
	RemovalDate    string `yaml:"removal_date"`
	WarningText    string `yaml:"warning_text"`
}

// When returns the removal version, or the removal date when no version is
// set.
func (n Notice) When() string {
	if n.RemovalVersion != "" {
		return n.RemovalVersion
	}
	return n.RemovalDate
}

// Routing is the runtime.yml entry for one plugin.
type Routing struct {
	Redirect    string  `yaml:"redirect"`
	Tombstone   *Notice `yaml:"tombstone"`
	Deprecation *Notice `yaml:"deprecation"`
}

// Runtime is the parsed meta/runtime.yml.
type Runtime struct {
	RequiresAnsible string                        `yaml:"requires_ansible"`
	PluginRouting   map[string]map[string]Routing `yaml:"plugin_routing"`
}

// ReadRuntime reads meta/runtime.yml from the collection root dir.
func ReadRuntime(dir string) (*Runtime, error) {
	path := filepath.Join(dir, RuntimeFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found", RuntimeFile)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	var rt Runtime
	if err := yaml.Unmarshal(data, &rt); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "parse %s", path)
	}
	return &rt, nil
}

// InfoType restricts lookups to one kind of routing record. The zero value
// accepts every kind.
type InfoType byte

const (
	InfoAny         InfoType = 0
	InfoRedirect    InfoType = 'R'
	InfoTombstone   InfoType = 'T'
	InfoDeprecation InfoType = 'D'
)

var infoNames = []struct {
	name string
	t    InfoType
}{
	{"redirect", InfoRedirect},
	{"tombstone", InfoTombstone},
	{"deprecation", InfoDeprecation},
}

// ParseInfoType accepts "redirect", "tombstone" or "deprecation", or any
// prefix of them down to a single letter, in any case.
func ParseInfoType(s string) (InfoType, error) {
	if s == "" {
		return InfoAny, nil
	}
	lower := strings.ToLower(s)
	for _, n := range infoNames {
		if strings.HasPrefix(n.name, lower) {
			return n.t, nil
		}
	}
	return InfoAny, errors.New(errors.ErrCodeInvalidInput, "invalid info type %q: must be one of redirect, tombstone, deprecation", s)
}

func (t InfoType) accepts(other InfoType) bool {
	return t == InfoAny || t == other
}

// Hit is one plugin matched by a lookup.
type Hit struct {
	Kind       InfoType
	PluginType string
	Name       string
	Routing    Routing
}

// Format renders the hit as a single line. current is the collection version
// shown next to deprecations.
func (h Hit) Format(current string) string {
	subject := h.PluginType + " " + h.Name
	switch h.Kind {
	case InfoRedirect:
		return fmt.Sprintf("R %s: redirected to %s", subject, h.Routing.Redirect)
	case InfoTombstone:
		return fmt.Sprintf("T %s: terminated in %s: %s", subject, h.Routing.Tombstone.When(), h.Routing.Tombstone.WarningText)
	case InfoDeprecation:
		return fmt.Sprintf("D %s: deprecation in %s (current=%s): %s", subject, h.Routing.Deprecation.When(), current, h.Routing.Deprecation.WarningText)
	}
	return subject
}

// ValidPluginType reports whether t is one of PluginTypes.
func ValidPluginType(t string) bool {
	return slices.Contains(PluginTypes, t)
}

// Lookup searches the routing table for plugins matched by any of ms. Each
// plugin yields at most one hit: a redirect wins over a tombstone, which wins
// over a deprecation, among the kinds accepted by info. Hits are ordered by
// plugin type as given, then by plugin name.
func (rt *Runtime) Lookup(types []string, ms []Matcher, info InfoType) []Hit {
	var hits []Hit
	for _, pt := range types {
		plugins := rt.PluginRouting[pt]
		names := make([]string, 0, len(plugins))
		for name := range plugins {
			if matchAny(ms, name) {
				names = append(names, name)
			}
		}
		slices.Sort(names)

		for _, name := range names {
			r := plugins[name]
			kind := classify(r, info)
			if kind == InfoAny {
				continue
			}
			hits = append(hits, Hit{Kind: kind, PluginType: pt, Name: name, Routing: r})
		}
	}
	return hits
}

func classify(r Routing, info InfoType) InfoType {
	switch {
	case r.Redirect != "" && info.accepts(InfoRedirect):
		return InfoRedirect
	case r.Tombstone != nil && info.accepts(InfoTombstone):
		return InfoTombstone
	case r.Deprecation != nil && info.accepts(InfoDeprecation):
		return InfoDeprecation
	}
	return InfoAny
}
