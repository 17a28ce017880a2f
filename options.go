package checkemail

import "encoding/json"

// DefaultMaxTLD is the TLD length bound used in unrestricted mode when
// Options.Max is not set.
const DefaultMaxTLD = 3

// Configuration error messages. These are part of the observable
// contract and match the original check-email package verbatim,
// backticks included.
const (
	errMaxType        = "`max` can only have a value of number."
	errDomainsType    = "`domains` can only have a value of string or array of strings."
	errMaxWithDomains = "`max` can only be used if `domains` are not provided."
)

// Options configures a CheckEmail call. The zero value means
// unrestricted mode with the default TLD length bound.
type Options struct {
	// Domains restricts matching to an allow-list: the email's domain
	// must exactly equal one of the entries. Empty means unrestricted.
	// A single-domain restriction is a one-element list.
	Domains []string

	// Max bounds the TLD length in unrestricted mode. Zero means
	// DefaultMaxTLD. Mutually exclusive with Domains.
	Max int

	// Set when JSON decoding sees the wrong type. Surfaced as failed
	// Results by CheckEmail so all errors share one channel.
	maxTypeErr     bool
	domainsTypeErr bool
}

// UnmarshalJSON accepts the loose option shape used at untyped
// boundaries such as config files: domains may be a single string or an
// array of strings, and max must be a number. A type mismatch is not a
// decode failure; it is recorded and reported by CheckEmail as a failed
// Result with the corresponding contract message.
func (o *Options) UnmarshalJSON(data []byte) error {
	var raw struct {
		Domains json.RawMessage `json:"domains"`
		Max     json.RawMessage `json:"max"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Options{}

	if present(raw.Max) {
		var max float64
		if err := json.Unmarshal(raw.Max, &max); err != nil {
			o.maxTypeErr = true
		} else {
			o.Max = int(max)
		}
	}

	if present(raw.Domains) {
		var single string
		if err := json.Unmarshal(raw.Domains, &single); err == nil {
			// An empty string does not trigger domain-restricted mode.
			if single != "" {
				o.Domains = []string{single}
			}
			return nil
		}
		var many []string
		if err := json.Unmarshal(raw.Domains, &many); err == nil {
			o.Domains = many
			return nil
		}
		o.domainsTypeErr = true
	}

	return nil
}

// present reports whether a raw JSON field was supplied with a
// non-null value.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
