package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/humotica/kit/internal/app"
	"github.com/humotica/kit/internal/core/domain"
	"github.com/humotica/kit/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <package>",
		Short: "Validate a package against the trust policy and install it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			out := cmd.OutOrStdout()
			name := args[0]

			fmt.Fprintf(out, "%s\n", style.Warn("[CHECK] Validating package: "+domain.NormalizeName(name)))

			res, err := c.app.Install(cmd.Context(), name, app.InstallOptions{Force: force})
			if res != nil {
				renderVerdict(out, res)
			}

			switch {
			case errors.Is(err, domain.ErrPackageNotFound):
				fmt.Fprintf(out, "%s\n", style.Bad(fmt.Sprintf("[ERROR] Package '%s' not found", name)))
				fmt.Fprintf(out, "  Try: kit search %s\n", name)
				return err
			case errors.Is(err, domain.ErrInstallBlocked):
				fmt.Fprintf(out, "\n%s\n", style.Bad("[BLOCKED] Package validation failed:"))
				for _, warning := range res.Verdict.Warnings {
					fmt.Fprintf(out, "%s\n", style.Bad("  "+style.Dot+" "+warning))
				}
				fmt.Fprintln(out, "\n  Use --force to install anyway (not recommended)")
				return err
			case err != nil:
				return err
			}

			if res.Package.MCPConfig != nil {
				fmt.Fprintf(out, "\n%s\n", style.Header("[CONFIG] MCP server configuration available"))
				if command, ok := res.Package.MCPConfig["command"]; ok {
					fmt.Fprintf(out, "  Command: %v\n", command)
				}
			}

			fmt.Fprintf(out, "\n%s\n", style.Good(fmt.Sprintf("[DONE] %s v%s installed", res.Package.Name, res.Package.Version)))
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Force install even if validation fails")
	return cmd
}

func renderVerdict(out io.Writer, res *app.InstallResult) {
	v := res.Verdict
	pkg := res.Package

	fmt.Fprintf(out, "  Trust Score: %v %s\n", pkg.TrustScore, style.Status(v.TrustOK))
	fmt.Fprintf(out, "  JIS Compliant: %s %s\n", yesNo(pkg.JISCompliant), style.Status(v.JISOK))
	fmt.Fprintf(out, "  SNAFT Verified: %s %s\n", yesNo(pkg.SNAFTVerified), style.Status(v.SNAFTOK))
	fmt.Fprintf(out, "  Advisory: %s\n", style.Muted(v.Advisory))

	if len(res.Dependencies) > 0 {
		names := make([]string, len(res.Dependencies))
		for i, dep := range res.Dependencies {
			names[i] = dep.Name
		}
		fmt.Fprintf(out, "\n%s\n", style.Warn("[CHECK] Dependencies: "+strings.Join(names, ", ")))
		for _, dep := range res.Dependencies {
			if dep.Known {
				fmt.Fprintf(out, "%s\n", style.Good("  "+dep.Name+": OK"))
			} else {
				fmt.Fprintf(out, "%s\n", style.Muted("  "+dep.Name+": not in registry"))
			}
		}
	}
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
