package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/andebox/andebox/pkg/ignorefile"
)

// ignoresOpts holds the command-line flags for the ignores command.
type ignoresOpts struct {
	spec           string // version token, "-" for stdin, empty for all files
	depth          int    // path segments kept in the file column
	filterFiles    string // regexp searched in file names
	filterChecks   string // regexp searched in check names
	suppressFiles  bool   // drop the file column
	suppressChecks bool   // drop the check column
	head           int    // rows shown: >0 first, <0 last, 0 all
}

// ignoresCommand creates the ignores command, which reports how often files
// and checks appear in the sanity test ignore files.
func (c *CLI) ignoresCommand() *cobra.Command {
	var opts ignoresOpts

	cmd := &cobra.Command{
		Use:   "ignores",
		Short: "Gather statistics on the sanity test ignore files",
		Long: `Count the entries of tests/sanity/ignore-<version>.txt, grouped by file
and check, and print the most frequent ones.

Without --ignore-file-spec every ignore file is read; "-" reads standard input.`,
		Example: `  andebox ignores -s 2.12 -d 2 -K
  andebox ignores -f '^plugins/modules/' -k validate-modules -H 0
  cat tests/sanity/ignore-*.txt | andebox ignores -s - -H -5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runIgnores(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.spec, "ignore-file-spec", "s", "", `ansible version of the ignore file to read, or "-" for stdin`)
	flags.IntVarP(&opts.depth, "depth", "d", 0, "path depth for grouping files")
	flags.StringVarP(&opts.filterFiles, "filter-files", "f", "", "regexp filter to apply to file names")
	flags.StringVarP(&opts.filterChecks, "filter-checks", "k", "", "regexp filter to apply to check names")
	flags.BoolVarP(&opts.suppressFiles, "suppress-files", "F", false, "suppress file names from the output, consolidating the results")
	flags.BoolVarP(&opts.suppressChecks, "suppress-checks", "K", false, "suppress check names from the output, consolidating the results")
	flags.IntVarP(&opts.head, "head", "H", c.config().Ignores.Head, "number of lines to show, negative for the last lines, 0 for all")

	_ = cmd.RegisterFlagCompletionFunc("ignore-file-spec", c.completeIgnoreVersions)

	return cmd
}

func (c *CLI) runIgnores(cmd *cobra.Command, opts ignoresOpts) error {
	cfg := c.config().Ignores
	if !cmd.Flags().Changed("head") {
		opts.head = cfg.Head
	}
	if !cmd.Flags().Changed("depth") {
		opts.depth = cfg.Depth
	}

	filter, err := ignorefile.NewFilter(opts.filterFiles, opts.filterChecks)
	if err != nil {
		return err
	}

	logger := loggerFromContext(cmd.Context())
	dir := c.sanityDir()
	if opts.spec == ignorefile.Stdin && isTerminal(c.Stdin) {
		logger.Warn("Reading ignore entries from the terminal, end input with Ctrl-D")
	}

	res, err := ignorefile.Report(ignorefile.Options{
		Dir:     dir,
		Version: opts.spec,
		Stdin:   c.Stdin,
		Filter:  filter,
		Grouping: ignorefile.Grouping{
			Depth:          opts.depth,
			SuppressFiles:  opts.suppressFiles,
			SuppressChecks: opts.suppressChecks,
		},
		Head: opts.head,
	})
	if err != nil {
		return err
	}
	if len(res.Sources) == 0 {
		printWarning(c.Stderr, "No ignore files found in %s", dir)
	}
	logger.Debug("Report ready", "files", len(res.Sources), "entries", res.Entries, "rows", len(res.Ranked), "shown", len(res.Rows))

	return ignorefile.Render(c.Stdout, res.Rows)
}

// completeIgnoreVersions offers the versions of the ignore files present in
// the collection, plus "-" for standard input.
func (c *CLI) completeIgnoreVersions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	versions, err := ignorefile.Versions(c.sanityDir())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return append(versions, ignorefile.Stdin), cobra.ShellCompDirectiveNoFileComp
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
