package cmd

import (
	"context"

	"github.com/kenryanlabso/check-email/internal/config"
	"github.com/kenryanlabso/check-email/internal/outfmt"
	"github.com/kenryanlabso/check-email/internal/ui"
	"github.com/spf13/cobra"
)

type appKey struct{}

type App struct {
	Flags  *rootFlags
	Config *config.File
	UI     *ui.UI
	Logger Logger
}

// Logger is the minimal interface we need from slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
}

func NewApp() *App {
	flags := rootFlags{
		Color:  envOr("CHECK_EMAIL_COLOR", "auto"),
		Output: envOr("CHECK_EMAIL_OUTPUT", "text"),
	}
	return &App{Flags: &flags}
}

func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func AppFromContext(ctx context.Context) *App {
	if app, ok := ctx.Value(appKey{}).(*App); ok {
		return app
	}
	return nil
}

// runE wraps a cobra RunE to inject the App and normalize errors.
func runE(app *App, fn func(cmd *cobra.Command, args []string, app *App) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if app == nil {
			app = AppFromContext(cmd.Context())
		}
		if app == nil {
			app = &App{Flags: &rootFlags{}}
		}
		return mapCommandError(fn(cmd, args, app))
	}
}

func (a *App) IsJSON(ctx context.Context) bool {
	mode, ok := ctx.Value(outputModeKey).(outfmt.Mode)
	return ok && mode == outfmt.JSON
}

func (a *App) Query(ctx context.Context) string {
	query, _ := ctx.Value(queryKey).(string)
	return query
}

func (a *App) PrintJSON(cmd *cobra.Command, v any) error {
	return outfmt.PrintJSONFiltered(v, a.Query(cmd.Context()))
}
