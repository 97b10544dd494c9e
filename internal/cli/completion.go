package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for andebox.

To load completions:

Bash:
  $ source <(andebox completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ andebox completion bash > /etc/bash_completion.d/andebox
  # macOS:
  $ andebox completion bash > $(brew --prefix)/etc/bash_completion.d/andebox

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ andebox completion zsh > "${fpath[1]}/_andebox"

Fish:
  $ andebox completion fish | source

  # To load completions for each session, execute once:
  $ andebox completion fish > ~/.config/fish/completions/andebox.fish

PowerShell:
  PS> andebox completion powershell | Out-String | Invoke-Expression

The ignores command completes --ignore-file-spec with the versions found in
tests/sanity, so completion works best from the collection root.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := c.Stdout
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
