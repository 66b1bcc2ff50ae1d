package commands

import (
	"fmt"
	"sort"

	"github.com/humotica/kit/internal/core/domain"
	"github.com/humotica/kit/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all packages in the local registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			packages := c.app.List()
			if len(packages) == 0 {
				fmt.Fprintf(out, "%s\n", style.Bad("  Registry is empty. Run 'kit update' to fetch packages."))
				return nil
			}

			// Registry order is document order; presentation is alphabetical.
			packages = append([]*domain.Package(nil), packages...)
			sort.Slice(packages, func(i, j int) bool {
				return packages[i].Name < packages[j].Name
			})

			fmt.Fprintf(out, "%s\n\n", style.Header(fmt.Sprintf("Registry (%d packages)", len(packages))))
			for _, pkg := range packages {
				fmt.Fprintf(out, "  %s %s v%s  %s\n",
					style.Muted(style.Dot),
					style.Bold(pkg.Name),
					pkg.Version,
					style.Muted(pkg.Description))
			}
			return nil
		},
	}
}
