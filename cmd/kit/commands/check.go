package commands

import (
	"fmt"
	"strings"

	"github.com/humotica/kit/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <text>...",
		Short: "Run arbitrary text through the advisory injection check",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			text := strings.Join(args, " ")

			fmt.Fprintf(out, "%s\n", style.Warn("[CHECK] Analyzing input..."))

			result := c.app.CheckText(cmd.Context(), text)
			if !result.Checked {
				fmt.Fprintf(out, "%s\n", style.Muted("  "+result.Response))
				return nil
			}

			fmt.Fprintf(out, "  %s\n", result.Response)
			return nil
		},
	}
}
