package cmd

import (
	"fmt"

	"github.com/kenryanlabso/check-email/internal/ui"
	"github.com/kenryanlabso/check-email/internal/update"
	"github.com/spf13/cobra"
)

func newVersionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information and check for updates",
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			ctx := cmd.Context()

			// Best-effort; nil on dev builds and network failures.
			result := update.CheckForUpdate(ctx, Version)

			if app.IsJSON(ctx) {
				payload := map[string]any{
					"version": Version,
					"commit":  Commit,
					"date":    Date,
				}
				if result != nil {
					payload["latestVersion"] = result.LatestVersion
					payload["updateAvailable"] = result.UpdateAvailable
					if result.UpdateAvailable {
						payload["updateUrl"] = result.UpdateURL
					}
				}
				return app.PrintJSON(cmd, payload)
			}

			fmt.Printf("check-email %s (commit %s, built %s)\n", Version, Commit, Date)
			if result != nil && result.UpdateAvailable {
				u := ui.FromContext(ctx)
				u.Warning(fmt.Sprintf("Update available: %s -> %s", result.CurrentVersion, result.LatestVersion))
				u.Info("Download: " + result.UpdateURL)
			}
			return nil
		}),
	}
	return cmd
}
