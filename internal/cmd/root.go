package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kenryanlabso/check-email/internal/config"
	cerrors "github.com/kenryanlabso/check-email/internal/errors"
	"github.com/kenryanlabso/check-email/internal/logging"
	"github.com/kenryanlabso/check-email/internal/outfmt"
	"github.com/kenryanlabso/check-email/internal/ui"
	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootFlags struct {
	Color  string
	Output string
	Debug  bool
	Query  string
}

type contextKey string

const (
	outputModeKey contextKey = "outputMode"
	queryKey      contextKey = "query"
)

func Execute(args []string) error {
	app := NewApp()
	root := NewRootCmd(app)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		if app.Flags.Output == "json" {
			payload := map[string]any{
				"error": map[string]any{
					"message": err.Error(),
				},
			}
			if cerrors.ContainsSuggestion(err) {
				payload["error"].(map[string]any)["suggestion"] = cerrors.GetSuggestion(err)
			}
			_ = outfmt.WriteJSON(os.Stderr, payload)
		} else {
			// Print the main error
			fmt.Fprintln(os.Stderr, "Error:", err)

			// Print suggestion if available
			if cerrors.ContainsSuggestion(err) {
				fmt.Fprintln(os.Stderr, "")
				fmt.Fprintln(os.Stderr, "Suggestion:", cerrors.GetSuggestion(err))
			}
		}
	}
	return err
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "check-email",
		Short:         "Validate email address syntax from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Validate a single address
  check-email check test@example.com

  # Restrict to an allow-list of domains
  check-email check test@example.com --domains example.com --domains sample.com

  # Allow longer TLDs such as .info
  check-email check user@example.info --max 4

  # Validate a batch, one address per line
  cat addresses.txt | check-email check

  # Lint an allow-list before shipping it in config
  check-email domains example.com bad_domain!

  # JSON output for scripting
  check-email --output=json check test@example.com --query '.results[0].valid'
`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Defaults file (lowest precedence, must come first)
			cfg, err := config.Load()
			if err != nil {
				return cerrors.WithSuggestion(err, cerrors.SuggestionFixConfig)
			}
			app.Config = cfg
			if f := cmd.Flag("output"); f != nil && !f.Changed && os.Getenv("CHECK_EMAIL_OUTPUT") == "" && cfg.Output != "" {
				app.Flags.Output = cfg.Output
			}
			if f := cmd.Flag("color"); f != nil && !f.Changed && os.Getenv("CHECK_EMAIL_COLOR") == "" && cfg.Color != "" {
				app.Flags.Color = cfg.Color
			}

			// UI
			u := ui.New(app.Flags.Color)
			ctx := ui.WithUI(cmd.Context(), u)
			app.UI = u

			// Output format
			mode := outfmt.Text
			if app.Flags.Output == "json" {
				mode = outfmt.JSON
			}
			ctx = context.WithValue(ctx, outputModeKey, mode)

			// Query filter
			ctx = context.WithValue(ctx, queryKey, app.Flags.Query)

			// Logging
			logger := logging.Setup(app.Flags.Debug)
			ctx = logging.WithLogger(ctx, logger)
			app.Logger = logger

			ctx = WithApp(ctx, app)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&app.Flags.Color, "color", app.Flags.Color, "Color output: auto|always|never")
	root.PersistentFlags().StringVar(&app.Flags.Output, "output", app.Flags.Output, "Output format: text|json")
	root.PersistentFlags().BoolVar(&app.Flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&app.Flags.Query, "query", "", "JQ filter expression for JSON output")

	root.AddCommand(newCheckCmd(app))
	root.AddCommand(newDomainsCmd(app))
	root.AddCommand(newVersionCmd(app))
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
