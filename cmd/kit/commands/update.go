package commands

import (
	"fmt"

	"github.com/humotica/kit/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Refresh the local registry from the remote source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s\n", style.Warn("[SYNC] Updating registry..."))

			if c.app.Update(cmd.Context()) {
				fmt.Fprintf(out, "%s\n", style.Good("[DONE] Registry is up to date"))
				return nil
			}

			fmt.Fprintf(out, "%s\n", style.Bad("[ERROR] Registry update failed, keeping local copy"))
			return nil
		},
	}
}
