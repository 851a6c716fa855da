package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gridcal.

To load completions:

Bash:
  $ source <(gridcal completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ gridcal completion bash > /etc/bash_completion.d/gridcal
  # macOS:
  $ gridcal completion bash > $(brew --prefix)/etc/bash_completion.d/gridcal

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ gridcal completion zsh > "${fpath[1]}/_gridcal"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ gridcal completion fish | source

  # To load completions for each session, execute once:
  $ gridcal completion fish > ~/.config/fish/completions/gridcal.fish

PowerShell:
  PS> gridcal completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> gridcal completion powershell > gridcal.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(stdout, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(stdout)
			}
			return nil
		},
	}

	return cmd
}
