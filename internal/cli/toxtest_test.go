package cli

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/andebox/andebox/pkg/config"
	"github.com/andebox/andebox/pkg/toxini"
)

func TestToxTestCommand(t *testing.T) {
	dir := t.TempDir()
	env := newTestCLI(t, dir, "")

	if err := env.run("tox-test", "-e", "212,dev", "-r", "--", "sanity", "--docker"); err != nil {
		t.Fatalf("tox-test: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, toxini.DefaultFile))
	if err != nil {
		t.Fatalf("tox configuration not written: %v", err)
	}
	if string(data) != toxini.DefaultConfig {
		t.Error("tox configuration differs from the default")
	}

	call := env.runner.calls[0]
	want := []string{"-c", toxini.DefaultFile, "-r", "-e", "212,dev", "--", "sanity", "--docker"}
	if call.Name != "tox" || !slices.Equal(call.Args, want) {
		t.Errorf("ran %s %v, want tox %v", call.Name, call.Args, want)
	}
	if call.Dir != dir {
		t.Errorf("Dir = %q, want %q", call.Dir, dir)
	}
}

func TestToxTestKeepsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	custom := "[tox]\nenvlist = mine\n"
	writeFiles(t, dir, map[string]string{toxini.DefaultFile: custom})

	env := newTestCLI(t, dir, "")
	if err := env.run("tox-test", "-l"); err != nil {
		t.Fatalf("tox-test: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, toxini.DefaultFile))
	if string(data) != custom {
		t.Errorf("existing configuration overwritten: %q", data)
	}
	want := []string{"-c", toxini.DefaultFile, "-a", "--"}
	if got := env.runner.calls[0].Args; !slices.Equal(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestToxTestConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		config.FileName: "[tox]\nconfig = \"tox-andebox.ini\"\nenvlist = [\"211\", \"212\"]\n",
	})

	env := newTestCLI(t, dir, "")
	if err := env.run("tox-test", "--", "units"); err != nil {
		t.Fatalf("tox-test: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "tox-andebox.ini")); err != nil {
		t.Errorf("configured tox file not written: %v", err)
	}
	want := []string{"-c", "tox-andebox.ini", "-e", "211,212", "--", "units"}
	if got := env.runner.calls[0].Args; !slices.Equal(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"212", []string{"212"}},
		{"29, 210,,dev", []string{"29", "210", "dev"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
