package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	checkemail "github.com/kenryanlabso/check-email"
	cerrors "github.com/kenryanlabso/check-email/internal/errors"
	"github.com/kenryanlabso/check-email/internal/logging"
	"github.com/kenryanlabso/check-email/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errNoInput is returned when check has neither arguments nor piped stdin.
var errNoInput = errors.New("no email addresses given")

// checkReport is the per-address entry in the check command's output.
type checkReport struct {
	Email string `json:"email"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func newCheckCmd(app *App) *cobra.Command {
	var flags struct {
		Domains []string
		Max     int
	}

	cmd := &cobra.Command{
		Use:     "check [email...]",
		Aliases: []string{"validate"},
		Short:   "Validate one or more email addresses",
		Long: strings.TrimSpace(`
Validate email address syntax. Without --domains the generic grammar is
used, bounded by --max (TLD length, default 3). With --domains the
address must use exactly one of the allow-listed domains; --max cannot
be combined with --domains.

With no arguments, addresses are read from stdin, one per line.
Defaults for --domains and --max may come from the config file when
neither flag is set.
`),
		Example: strings.TrimSpace(`
  check-email check test@example.com
  check-email check user@example.info --max 4
  check-email check test@example.com --domains example.com,sample.com
  cat addresses.txt | check-email check
`),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			emails := args
			if len(emails) == 0 {
				if term.IsTerminal(int(os.Stdin.Fd())) {
					return errNoInput
				}
				var err error
				emails, err = readLines(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				if len(emails) == 0 {
					return errNoInput
				}
			}

			opts := checkemail.Options{Domains: flags.Domains, Max: flags.Max}
			if !cmd.Flags().Changed("domains") && !cmd.Flags().Changed("max") && app.Config != nil {
				opts = app.Config.Options
			}

			ctx := cmd.Context()
			logger := logging.FromContext(ctx)

			reports := make([]checkReport, 0, len(emails))
			invalid := 0
			for _, email := range emails {
				res := checkemail.CheckEmail(email, opts)
				if !res.Valid {
					invalid++
				}
				logger.Debug("checked address", "email", email, "valid", res.Valid)
				reports = append(reports, checkReport{Email: email, Valid: res.Valid, Error: res.Error})
			}

			if app.IsJSON(ctx) {
				return app.PrintJSON(cmd, map[string]any{
					"results": reports,
					"checked": len(reports),
					"invalid": invalid,
				})
			}

			u := ui.FromContext(ctx)
			if len(reports) == 1 {
				printVerdict(u, reports[0])
			} else {
				printCheckTable(reports)
				printBatchSummary(len(reports), invalid)
			}

			// A malformed allow-list fails every address; point at the
			// domains command so the bad entries are easy to find.
			if len(opts.Domains) > 0 && !checkemail.CheckDomains(opts.Domains).Valid {
				u.Info(cerrors.SuggestionCheckDomains)
			}
			return nil
		}),
	}

	cmd.Flags().StringSliceVar(&flags.Domains, "domains", nil, "Restrict to these domains (repeatable or comma-separated)")
	cmd.Flags().IntVar(&flags.Max, "max", 0, "Maximum TLD length in unrestricted mode (default 3)")
	return cmd
}

// printVerdict prints the single-address text verdict.
func printVerdict(u *ui.UI, r checkReport) {
	if r.Valid {
		u.Valid(r.Email + " is valid")
		return
	}
	u.Invalid(r.Error)
}

// readLines collects non-empty trimmed lines from r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
