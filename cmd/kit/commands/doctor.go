package commands

import (
	"fmt"

	"github.com/humotica/kit/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check connectivity to the advisory service and registry source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s\n\n", style.Header("kit doctor"))

			healthy := true
			for _, check := range c.app.Doctor(cmd.Context()) {
				if check.OK {
					fmt.Fprintf(out, "  %s %s\n", style.Status(true), check.Name)
					continue
				}
				healthy = false
				fmt.Fprintf(out, "  %s %s: %s\n", style.Status(false), check.Name, style.Muted(check.Detail))
			}

			fmt.Fprintln(out)
			if healthy {
				fmt.Fprintf(out, "%s\n", style.Good("All checks passed"))
			} else {
				fmt.Fprintf(out, "%s\n", style.Warn("Some services are unreachable. Validation falls back to local policy."))
			}
			return nil
		},
	}
}
