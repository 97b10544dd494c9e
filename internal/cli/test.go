package cli

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/andebox/andebox/pkg/collection"
	"github.com/andebox/andebox/pkg/errors"
	"github.com/andebox/andebox/pkg/ignorefile"
	"github.com/andebox/andebox/pkg/toolrun"
	"github.com/andebox/andebox/pkg/workspace"
)

// testOpts holds the command-line flags for the test command.
type testOpts struct {
	keep              bool // keep the scratch tree after the run
	excludeFromIgnore bool // drop ignore lines for the files under test
}

// testCommand creates the test command, which runs ansible-test from a
// scratch ansible_collections tree.
func (c *CLI) testCommand() *cobra.Command {
	var opts testOpts

	cmd := &cobra.Command{
		Use:   "test [flags] -- ansible-test-params...",
		Short: "Run ansible-test in a temporary collection tree",
		Long: `Copy the collection into <tmp>/ansible_collections/<namespace>/<name> and
run ansible-test there. Use "--" to separate andebox flags from the
ansible-test parameters.`,
		Example: `  andebox test -- sanity --docker default plugins/modules/foo.py
  andebox test -e -- sanity plugins/modules/foo.py`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("keep") {
				opts.keep = c.config().Test.Keep
			}
			return c.runTest(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.keep, "keep", "k", false, "keep temporary directory after execution")
	cmd.Flags().BoolVarP(&opts.excludeFromIgnore, "exclude-from-ignore", "e", false, "filter out ignore file lines for the files passed to ansible-test")

	return cmd
}

func (c *CLI) runTest(cmd *cobra.Command, opts testOpts, params []string) (err error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	namespace, name, err := collection.Determine(c.collection, c.Dir)
	if err != nil {
		return err
	}

	ws, err := workspace.New(namespace, name, opts.keep, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ws.Close(); err == nil {
			err = cerr
		}
	}()

	printKeyValue(c.Stderr, "collection", namespace+"."+name)
	printKeyValue(c.Stderr, "directory", ws.CollectionDir)

	prog := newProgress(logger)
	if err := ws.Populate(c.Dir); err != nil {
		return err
	}
	prog.done("Copied collection")

	if opts.excludeFromIgnore {
		if err := c.excludeFromIgnore(ws, params); err != nil {
			return err
		}
	}

	printCommand(c.Stderr, ansibleTest, params)
	err = c.Runner.Run(ctx, toolrun.Command{
		Name: ansibleTest,
		Args: params,
		Dir:  ws.CollectionDir,
		Env:  ws.Env(),
	})
	if err != nil {
		if errors.Is(err, errors.ErrCodeCommandFailed) {
			printError(c.Stderr, "%s failed", ansibleTest)
		}
		return err
	}
	printSuccess(c.Stderr, "%s passed", ansibleTest)
	return nil
}

// excludeFromIgnore rewrites the workspace copies of the ignore files
// without the lines for any parameter naming an existing file.
func (c *CLI) excludeFromIgnore(ws *workspace.Workspace, params []string) error {
	files := existingFiles(c.Dir, params)
	if len(files) == 0 {
		printInfo(c.Stderr, "No files among the parameters, ignore files left unchanged")
		return nil
	}
	printInfo(c.Stderr, "Excluding from ignore files: %v", files)

	dropped, err := ignorefile.ExcludeFromDir(
		c.path(ignorefile.SanityDir),
		filepath.Join(ws.CollectionDir, ignorefile.SanityDir),
		files,
	)
	if err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(dropped)) {
		printDetail(c.Stderr, "%s: %d lines dropped", name, dropped[name])
	}
	return nil
}

// existingFiles returns the params that name regular files under dir.
func existingFiles(dir string, params []string) []string {
	var files []string
	for _, p := range params {
		path := p
		if !filepath.IsAbs(p) {
			path = filepath.Join(dir, p)
		}
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			files = append(files, p)
		}
	}
	return files
}
