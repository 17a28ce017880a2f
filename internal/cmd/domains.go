package cmd

import (
	"fmt"
	"strings"

	checkemail "github.com/kenryanlabso/check-email"
	"github.com/kenryanlabso/check-email/internal/outfmt"
	"github.com/spf13/cobra"
)

// domainReport is the per-domain entry in the domains command's output.
type domainReport struct {
	Domain string `json:"domain"`
	Valid  bool   `json:"valid"`
}

func newDomainsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains <domain>...",
		Aliases: []string{"domain"},
		Short:   "Check that allow-list domains are well-formed",
		Long: strings.TrimSpace(`
Check that each domain is well-formed as label.tld: a label of word
characters, one dot, and an alphabetic TLD of at least two letters.
This is the same pre-flight the check command runs over --domains, so
an allow-list can be linted before it ships in config.
`),
		Example: strings.TrimSpace(`
  check-email domains example.com sample.com
  check-email domains bad_domain! ok.com
`),
		Args: cobra.MinimumNArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			res := checkemail.CheckDomains(args)

			reports := make([]domainReport, 0, len(args))
			for _, d := range args {
				reports = append(reports, domainReport{Domain: d, Valid: checkemail.IsDomain(d)})
			}

			if app.IsJSON(cmd.Context()) {
				payload := map[string]any{
					"domains": reports,
					"valid":   res.Valid,
				}
				if res.Error != "" {
					payload["error"] = res.Error
				}
				return app.PrintJSON(cmd, payload)
			}

			w := outfmt.NewTabWriter()
			fmt.Fprintln(w, "DOMAIN\tSTATUS")
			for _, r := range reports {
				status := "valid"
				if !r.Valid {
					status = "invalid"
				}
				fmt.Fprintf(w, "%s\t%s\n", outfmt.Sanitize(r.Domain), status)
			}
			_ = w.Flush()

			if !res.Valid {
				fmt.Println(res.Error)
			}
			return nil
		}),
	}
	return cmd
}
