package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/humotica/kit/internal/core/domain"
	"github.com/humotica/kit/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <package>",
		Short: "Show detailed information about a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			name := args[0]

			pkg, err := c.app.Info(name)
			if errors.Is(err, domain.ErrPackageNotFound) {
				fmt.Fprintf(out, "%s\n", style.Bad(fmt.Sprintf("[ERROR] Package '%s' not found", name)))
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s\n\n", style.Header(fmt.Sprintf("%s v%s", pkg.Name, pkg.Version)))
			fmt.Fprintf(out, "  Description:    %s\n", pkg.Description)
			fmt.Fprintf(out, "  Author:         %s\n", pkg.Author)
			fmt.Fprintf(out, "  Trust Score:    %s\n", trustColored(pkg.TrustScore))
			fmt.Fprintf(out, "  JIS Compliant:  %s\n", style.Status(pkg.JISCompliant))
			fmt.Fprintf(out, "  SNAFT Verified: %s\n", style.Status(pkg.SNAFTVerified))
			fmt.Fprintf(out, "  PyPI:           %s\n", orNA(pkg.PyPI))
			fmt.Fprintf(out, "  NPM:            %s\n", orNA(pkg.NPM))

			if len(pkg.Dependencies) > 0 {
				fmt.Fprintf(out, "  Dependencies:   %s\n", strings.Join(pkg.Dependencies, ", "))
			} else {
				fmt.Fprintf(out, "  Dependencies:   %s\n", style.Muted("none"))
			}

			if pkg.MCPConfig != nil {
				fmt.Fprintf(out, "\n%s\n", style.Header("MCP configuration"))
				keys := make([]string, 0, len(pkg.MCPConfig))
				for key := range pkg.MCPConfig {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Fprintf(out, "  %s: %v\n", key, pkg.MCPConfig[key])
				}
			}

			return nil
		},
	}
}
