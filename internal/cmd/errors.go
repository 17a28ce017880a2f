package cmd

import (
	"errors"

	cerrors "github.com/kenryanlabso/check-email/internal/errors"
)

// mapCommandError adds common suggestions for known error types.
func mapCommandError(err error) error {
	if err == nil {
		return nil
	}
	if cerrors.ContainsSuggestion(err) {
		return err
	}

	if errors.Is(err, errNoInput) {
		return cerrors.WithSuggestion(err, cerrors.SuggestionPipeStdin)
	}

	return err
}
