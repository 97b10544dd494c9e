package cli

import (
	"github.com/spf13/cobra"

	"github.com/andebox/andebox/pkg/buildinfo"
	"github.com/andebox/andebox/pkg/config"
	"github.com/andebox/andebox/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, plus pipeline and tool events
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Andebox is a toolbox for Ansible collection developers",
		Long: `Andebox helps Ansible collection developers: it reports statistics on the
sanity test ignore files, runs ansible-test from a scratch collection tree,
runs it through tox against several ansible versions and looks plugins up in
meta/runtime.yml.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetIn(c.Stdin)
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&c.collection, "collection", "c", "", "fully qualified collection name (namespace.name), read from galaxy.yml if omitted")

	// Register all subcommands
	root.AddCommand(c.ignoresCommand())
	root.AddCommand(c.testCommand())
	root.AddCommand(c.toxTestCommand())
	root.AddCommand(c.runtimeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup runs before every subcommand: it fixes the log level, loads the
// project configuration and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	level := LogInfo
	if c.verbose {
		level = LogDebug
		hooks := logHooks{logger: c.Logger}
		observability.SetIgnoresHooks(hooks)
		observability.SetCommandHooks(hooks)
	}
	c.SetLogLevel(level)

	cfg, err := config.Load(c.Dir)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		c.Logger.Debug("Loaded configuration", "file", cfg.Path)
	}
	for _, key := range cfg.Undecoded {
		c.Logger.Warn("Unknown configuration key", "key", key, "file", cfg.Path)
	}
	c.cfg = cfg

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
