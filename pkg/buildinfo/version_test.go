package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFrom(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "dev", "none", "unknown"
	fillFrom(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	if Version != "v0.3.0" || Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("fillFrom = %q %q %q", Version, Commit, Date)
	}
}

func TestFillFromKeepsLdflags(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.0.0", "deadbeef", "2025-12-20"
	fillFrom(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	if Version != "v1.0.0" || Commit != "deadbeef" {
		t.Errorf("ldflags values were overwritten: %q %q", Version, Commit)
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	for _, want := range []string{"{{.Name}} version", Version, Commit, Date} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() = %q, missing %q", tmpl, want)
		}
	}
	if !strings.HasPrefix(String(), "version: ") {
		t.Errorf("String() = %q", String())
	}
}
