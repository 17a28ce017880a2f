// Package ui provides terminal UI utilities with color support.
// Verdict lines (the data a user asked for) go to stdout; status and
// warning messages go to stderr. Color detection is automatic and
// respects the NO_COLOR environment variable.
package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

type UI struct {
	out   *termenv.Output // stdout: verdict lines
	err   *termenv.Output // stderr: status messages
	color bool
}

type contextKey struct{}

// New creates a new UI with the specified color mode.
// colorMode can be "never", "always", or "auto".
// The NO_COLOR environment variable overrides color=true.
func New(colorMode string) *UI {
	out := termenv.NewOutput(os.Stdout)
	errOut := termenv.NewOutput(os.Stderr)
	var color bool

	switch colorMode {
	case "never":
		color = false
	case "always":
		color = true
	default: // auto
		color = out.ColorProfile() != termenv.Ascii
	}

	if os.Getenv("NO_COLOR") != "" {
		color = false
	}

	return &UI{out: out, err: errOut, color: color}
}

// Valid prints a verdict line for a valid address in green to stdout.
func (u *UI) Valid(line string) {
	if u.color {
		fmt.Fprintln(os.Stdout, u.out.String(line).Foreground(u.out.Color("2")))
	} else {
		fmt.Fprintln(os.Stdout, line)
	}
}

// Invalid prints a verdict line for an invalid address in red to stdout.
func (u *UI) Invalid(line string) {
	if u.color {
		fmt.Fprintln(os.Stdout, u.out.String(line).Foreground(u.out.Color("1")))
	} else {
		fmt.Fprintln(os.Stdout, line)
	}
}

// Warning prints a warning message in yellow to stderr.
func (u *UI) Warning(msg string) {
	if u.color {
		fmt.Fprintln(os.Stderr, u.err.String(msg).Foreground(u.err.Color("3")))
	} else {
		fmt.Fprintln(os.Stderr, msg)
	}
}

// Info prints an informational message to stderr.
func (u *UI) Info(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// WithUI stores the UI in the context.
func WithUI(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext retrieves the UI from the context.
// If no UI is found in the context, returns New("auto").
func FromContext(ctx context.Context) *UI {
	if u, ok := ctx.Value(contextKey{}).(*UI); ok {
		return u
	}
	return New("auto")
}
