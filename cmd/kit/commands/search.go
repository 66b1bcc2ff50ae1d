package commands

import (
	"fmt"

	"github.com/humotica/kit/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search packages by name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			out := cmd.OutOrStdout()

			results := c.app.Search(query)

			fmt.Fprintf(out, "%s\n\n", style.Warn("[SEARCH] Searching for: "+query))

			if len(results) == 0 {
				fmt.Fprintf(out, "%s\n", style.Bad(fmt.Sprintf("  No packages found for '%s'", query)))
				return nil
			}

			for _, pkg := range results {
				fmt.Fprintf(out, "  %s v%s\n", style.Bold(pkg.Name), pkg.Version)
				fmt.Fprintf(out, "    %s\n", pkg.Description)
				fmt.Fprintf(out, "    Trust: %s | PyPI: %s\n\n", trustColored(pkg.TrustScore), orNA(pkg.PyPI))
			}

			fmt.Fprintf(out, "%s\n", style.Muted(fmt.Sprintf("  Found %d package(s)", len(results))))
			return nil
		},
	}
}

// trustColored renders a trust score in green, yellow or red depending on
// how far it sits above the policy threshold.
func trustColored(score float64) string {
	s := fmt.Sprintf("%v", score)
	switch {
	case score >= 0.8:
		return style.Good(s)
	case score >= 0.5:
		return style.Warn(s)
	default:
		return style.Bad(s)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
