package cli

import (
	"github.com/spf13/cobra"

	"github.com/andebox/andebox/pkg/collection"
	"github.com/andebox/andebox/pkg/errors"
)

// runtimeOpts holds the command-line flags for the runtime command.
type runtimeOpts struct {
	pluginType string // restrict to one plugin type
	regex      bool   // treat names as regular expressions
	infoType   string // redirect, tombstone or deprecation, or a prefix
}

// runtimeCommand creates the runtime command, which looks plugins up in
// meta/runtime.yml.
func (c *CLI) runtimeCommand() *cobra.Command {
	var opts runtimeOpts

	cmd := &cobra.Command{
		Use:   "runtime [flags] plugin-name...",
		Short: "Return information from meta/runtime.yml",
		Long: `Print the redirect, tombstone or deprecation recorded in meta/runtime.yml
for each matching plugin, one line per plugin:

  R <type> <name>: redirected to <target>
  T <type> <name>: terminated in <version>: <text>
  D <type> <name>: deprecation in <version> (current=<version>): <text>`,
		Example: `  andebox runtime plugins/modules/foo.py
  andebox runtime -t lookup -r '^ldap_'
  andebox runtime -i d -r .`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRuntime(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.pluginType, "plugin-type", "t", "", "plugin type to be searched")
	flags.BoolVarP(&opts.regex, "regex", "r", false, "treat plugin names as regular expressions")
	flags.StringVarP(&opts.infoType, "info-type", "i", "", "restrict results to redirect, tombstone or deprecation (may be shortened to one letter)")

	_ = cmd.RegisterFlagCompletionFunc("plugin-type", cobra.FixedCompletions(collection.PluginTypes, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("info-type", cobra.FixedCompletions([]string{"redirect", "tombstone", "deprecation"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runRuntime(cmd *cobra.Command, opts runtimeOpts, names []string) error {
	types := collection.PluginTypes
	if opts.pluginType != "" {
		if !collection.ValidPluginType(opts.pluginType) {
			return errors.New(errors.ErrCodeInvalidInput, "invalid plugin type %q: must be one of %v", opts.pluginType, collection.PluginTypes)
		}
		types = []string{opts.pluginType}
	}

	info, err := collection.ParseInfoType(opts.infoType)
	if err != nil {
		return err
	}
	matchers, err := collection.Matchers(names, opts.regex)
	if err != nil {
		return err
	}

	rt, err := collection.ReadRuntime(c.Dir)
	if err != nil {
		return err
	}
	galaxy, err := collection.ReadGalaxy(c.Dir)
	if err != nil {
		return err
	}

	hits := rt.Lookup(types, matchers, info)
	loggerFromContext(cmd.Context()).Debug("Runtime lookup", "collection", galaxy.FQCN(), "types", len(types), "hits", len(hits))
	for _, h := range hits {
		printHit(c.Stdout, h, galaxy.Version)
	}
	return nil
}
