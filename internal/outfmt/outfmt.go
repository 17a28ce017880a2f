// Package outfmt writes command output in text or JSON form.
package outfmt

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kenryanlabso/check-email/internal/filter"
)

type Mode int

const (
	Text Mode = iota
	JSON
)

// WriteJSON writes v as indented JSON to w.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSONFiltered writes v as indented JSON to w, applying a JQ
// filter expression. If query is empty, behaves like WriteJSON.
// v is round-tripped through encoding/json first because gojq only
// operates on map/slice/primitive values, not arbitrary structs.
func WriteJSONFiltered(w io.Writer, v any, query string) error {
	if query == "" {
		return WriteJSON(w, v)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	result, err := filter.Apply(decoded, query)
	if err != nil {
		return err
	}
	return WriteJSON(w, result)
}

// PrintJSONFiltered prints v as JSON to stdout, applying a JQ filter
// expression.
func PrintJSONFiltered(v any, query string) error {
	return WriteJSONFiltered(os.Stdout, v, query)
}

// NewTabWriter returns a tabwriter configured for stdout.
func NewTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// Sanitize makes an untrusted input string safe for single-line table
// output: tabs become spaces so columns stay aligned, and other control
// characters are dropped so a crafted "address" cannot mangle the
// terminal.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 32 || r == 127:
			return -1
		}
		return r
	}, s)
}
