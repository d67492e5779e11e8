package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// completionGenerators maps shell names to their cobra script
// generators.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletion(w) },
	"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for flowdeck.

To load completions in the current shell:

Bash:
  $ source <(flowdeck completion bash)

Zsh:
  $ flowdeck completion zsh > "${fpath[1]}/_flowdeck"

Fish:
  $ flowdeck completion fish | source

PowerShell:
  PS> flowdeck completion powershell | Out-String | Invoke-Expression

To load completions for every new session, write the script to the
shell's completion directory (e.g. /etc/bash_completion.d/flowdeck or
~/.config/fish/completions/flowdeck.fish) and start a new shell.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), os.Stdout)
		},
	}

	return cmd
}
