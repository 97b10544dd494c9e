package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/andebox/andebox/pkg/toolrun"
	"github.com/andebox/andebox/pkg/toxini"
)

// toxTestOpts holds the command-line flags for the tox-test command.
type toxTestOpts struct {
	env      string // comma-separated tox environments
	list     bool   // tox -a
	recreate bool   // tox -r
}

// toxTestCommand creates the tox-test command, which runs "andebox test"
// through tox for several ansible versions.
func (c *CLI) toxTestCommand() *cobra.Command {
	var opts toxTestOpts

	cmd := &cobra.Command{
		Use:   "tox-test [flags] -- [ansible-test-params...]",
		Short: "Run ansible-test within tox, for testing in multiple ansible versions",
		Long: `Run ansible-test through tox, once per ansible version.

A default tox configuration is written to ` + toxini.DefaultFile + ` the first
time; it is never overwritten, so it can be edited freely afterwards.`,
		Example: `  andebox tox-test -l
  andebox tox-test -e 212,dev -- sanity --docker default`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runToxTest(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.env, "env", "e", "", "tox environments to run the test in, comma-separated")
	flags.BoolVarP(&opts.list, "list", "l", false, "list all tox environments (tox -a)")
	flags.BoolVarP(&opts.recreate, "recreate", "r", false, "force recreation of virtual environments (tox -r)")

	_ = cmd.RegisterFlagCompletionFunc("env", cobra.FixedCompletions(toxini.DefaultEnvList, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runToxTest(cmd *cobra.Command, opts toxTestOpts, params []string) error {
	cfg := c.config().Tox
	configFile := cfg.Config
	if configFile == "" {
		configFile = toxini.DefaultFile
	}

	created, err := toxini.EnsureFile(c.path(configFile))
	if err != nil {
		return err
	}
	if created {
		printSuccess(c.Stderr, "Wrote default tox configuration")
		printFile(c.Stderr, configFile)
	}

	envs := splitList(opts.env)
	if len(envs) == 0 {
		envs = cfg.EnvList
	}

	args := toxini.Args(toxini.Options{
		ConfigFile: configFile,
		List:       opts.list,
		Recreate:   opts.recreate,
		Envs:       envs,
		TestArgs:   params,
	})
	printCommand(c.Stderr, tox, args)
	return c.Runner.Run(cmd.Context(), toolrun.Command{Name: tox, Args: args, Dir: c.Dir})
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
