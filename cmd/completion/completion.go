package completion

import (
	"os"

	"github.com/spf13/cobra"
)

func CompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for the specified shell.

The completion script can be sourced to enable command-line completion for loom.

Bash:
  $ source <(loom completion bash)

  To load completions for each session, execute once:
  Linux:
    $ loom completion bash > /etc/bash_completion.d/loom
  macOS:
    $ loom completion bash > /usr/local/etc/bash_completion.d/loom

Zsh:
  If shell completion is not already enabled in your environment, you will need
  to enable it. You can execute the following once:
    $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  To load completions for each session, execute once:
    $ loom completion zsh > "${fpath[1]}/_loom"

  You will need to start a new shell for this setup to take effect.

Fish:
  $ loom completion fish | source

  To load completions for each session, execute once:
    $ loom completion fish > ~/.config/fish/completions/loom.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				cmd.Root().GenFishCompletion(os.Stdout, true)
			}
		},
	}

	return cmd
}
