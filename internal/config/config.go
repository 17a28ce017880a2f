// Package config loads the optional defaults file. Validation options
// that arrive here cross an untyped boundary: a config file may carry
// `domains` as a string or array, or the wrong type entirely, and those
// mistakes surface as failed validation results rather than load errors.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	checkemail "github.com/kenryanlabso/check-email"
)

// AppName is used for the config directory name.
const AppName = "check-email"

// File is the on-disk configuration. All fields are optional; flags and
// environment variables take precedence over every one of them.
type File struct {
	// Options carries default `domains` and `max` values for the check
	// command, in the same loose shape the library accepts.
	Options checkemail.Options

	// Output is the default output format: "text" or "json".
	Output string

	// Color is the default color mode: "auto", "always" or "never".
	Color string
}

// UnmarshalJSON decodes the file. The whole document is handed to
// checkemail.Options so `domains`/`max` keep the library's loose-shape
// semantics; `output` and `color` are read alongside.
func (f *File) UnmarshalJSON(data []byte) error {
	var raw struct {
		Output string `json:"output"`
		Color  string `json:"color"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &f.Options); err != nil {
		return err
	}
	f.Output = raw.Output
	f.Color = raw.Color
	return nil
}

// Path returns the location of the config file.
func Path() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName, "config.json")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "."+AppName, "config.json")
	}
	return filepath.Join("."+AppName, "config.json")
}

// Load reads the config file. A missing file is not an error; it yields
// an empty File so the built-in defaults apply.
func Load() (*File, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", Path(), err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", Path(), err)
	}
	return &f, nil
}
