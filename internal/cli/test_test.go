package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/andebox/andebox/pkg/errors"
	"github.com/andebox/andebox/pkg/toolrun"
	"github.com/andebox/andebox/pkg/workspace"
)

const galaxyYML = "namespace: ns\nname: coll\nversion: 1.0.0\n"

func testCollection(t *testing.T) string {
	t.Helper()
	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv(workspace.CollectionsPathEnv, "")

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"galaxy.yml":           galaxyYML,
		"plugins/modules/a.py": "# a\n",
		"plugins/modules/b.py": "# b\n",
		".git/HEAD":            "ref: refs/heads/main\n",
		"tests/sanity/ignore-2.12.txt": "plugins/modules/a.py validate-modules:doc-missing-type\n" +
			"plugins/modules/b.py validate-modules:doc-missing-type\n",
	})
	return dir
}

func TestTestCommand(t *testing.T) {
	env := newTestCLI(t, testCollection(t), "")

	var ignore string
	env.runner.inspect = func(c toolrun.Command) {
		data, err := os.ReadFile(filepath.Join(c.Dir, "tests", "sanity", "ignore-2.12.txt"))
		if err != nil {
			t.Errorf("ignore file not copied: %v", err)
		}
		ignore = string(data)
		if _, err := os.Stat(filepath.Join(c.Dir, ".git")); !os.IsNotExist(err) {
			t.Error("dot entries must not be copied")
		}
	}

	if err := env.run("test", "--", "sanity", "plugins/modules/a.py"); err != nil {
		t.Fatalf("test: %v", err)
	}

	if len(env.runner.calls) != 1 {
		t.Fatalf("runner called %d times, want 1", len(env.runner.calls))
	}
	call := env.runner.calls[0]
	if call.Name != "ansible-test" || !slices.Equal(call.Args, []string{"sanity", "plugins/modules/a.py"}) {
		t.Errorf("ran %s %v", call.Name, call.Args)
	}
	if !strings.HasSuffix(call.Dir, filepath.Join("ansible_collections", "ns", "coll")) {
		t.Errorf("Dir = %q, want scratch collection dir", call.Dir)
	}
	root := filepath.Dir(filepath.Dir(filepath.Dir(call.Dir)))
	if !slices.Contains(call.Env, workspace.CollectionsPathEnv+"="+root) {
		t.Errorf("Env lacks %s=%s", workspace.CollectionsPathEnv, root)
	}
	if strings.Count(ignore, "\n") != 2 {
		t.Errorf("without -e the ignore file must be copied unchanged, got %q", ignore)
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Errorf("workspace %s not removed", root)
	}
}

func TestTestCommandExcludeFromIgnore(t *testing.T) {
	env := newTestCLI(t, testCollection(t), "")

	var ignore string
	env.runner.inspect = func(c toolrun.Command) {
		data, _ := os.ReadFile(filepath.Join(c.Dir, "tests", "sanity", "ignore-2.12.txt"))
		ignore = string(data)
	}

	if err := env.run("test", "-e", "--", "sanity", "plugins/modules/a.py", "--docker"); err != nil {
		t.Fatalf("test: %v", err)
	}
	if want := "plugins/modules/b.py validate-modules:doc-missing-type\n"; ignore != want {
		t.Errorf("ignore file in workspace = %q, want %q", ignore, want)
	}
	if !strings.Contains(env.stderr.String(), "ignore-2.12.txt: 1 lines dropped") {
		t.Errorf("stderr = %q, want drop summary", env.stderr.String())
	}
}

func TestTestCommandKeep(t *testing.T) {
	env := newTestCLI(t, testCollection(t), "")

	if err := env.run("test", "-k", "--", "units"); err != nil {
		t.Fatalf("test: %v", err)
	}
	dir := env.runner.calls[0].Dir
	if _, err := os.Stat(filepath.Join(dir, "galaxy.yml")); err != nil {
		t.Errorf("kept workspace missing: %v", err)
	}
}

func TestTestCommandCollectionFlag(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	env := newTestCLI(t, t.TempDir(), "")

	if err := env.run("-c", "community.general", "test", "--", "units"); err != nil {
		t.Fatalf("test: %v", err)
	}
	want := filepath.Join("ansible_collections", "community", "general")
	if dir := env.runner.calls[0].Dir; !strings.HasSuffix(dir, want) {
		t.Errorf("Dir = %q, want suffix %q", dir, want)
	}
}

func TestTestCommandFailures(t *testing.T) {
	t.Run("tool exit status", func(t *testing.T) {
		env := newTestCLI(t, testCollection(t), "")
		env.runner.err = errors.Wrap(errors.ErrCodeCommandFailed,
			&errors.CommandError{Name: "ansible-test", ExitCode: 3}, "ansible-test failed")

		err := env.run("test", "--", "sanity")
		if got := errors.ExitCode(err); got != 3 {
			t.Errorf("ExitCode = %d, want 3 (err %v)", got, err)
		}
	})

	t.Run("no galaxy.yml", func(t *testing.T) {
		env := newTestCLI(t, t.TempDir(), "")
		err := env.run("test", "--", "sanity")
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("err = %v, want FILE_NOT_FOUND", err)
		}
		if len(env.runner.calls) != 0 {
			t.Error("ansible-test must not run")
		}
	})

	t.Run("no params", func(t *testing.T) {
		env := newTestCLI(t, testCollection(t), "")
		if err := env.run("test"); err == nil {
			t.Error("expected argument error")
		}
	})
}

func TestExistingFiles(t *testing.T) {
	dir := testCollection(t)
	got := existingFiles(dir, []string{"sanity", "plugins/modules/a.py", "plugins/modules", "--docker", "missing.py"})
	if want := []string{"plugins/modules/a.py"}; !slices.Equal(got, want) {
		t.Errorf("existingFiles() = %v, want %v", got, want)
	}
}
