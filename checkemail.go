// Package checkemail validates whether a string is a syntactically
// well-formed email address, optionally restricted to a fixed
// allow-list of domains and with a configurable maximum TLD length.
//
// Basic usage:
//
//	res := checkemail.CheckEmail("test@example.com", checkemail.Options{})
//
// Domain-restricted:
//
//	res := checkemail.CheckEmail("test@example.com", checkemail.Options{
//	    Domains: []string{"sample.com", "example.com"},
//	})
//
// Validation is a pure computation: no DNS lookups, no mailbox probes,
// no state between calls. Calls are safe for concurrent use.
package checkemail

import "strings"

// CheckEmail reports whether email is a syntactically valid address
// under opts. Configuration mistakes (a non-number max, a malformed
// allow-list, max combined with domains) fail the Result with a
// contract message; they are checked before any email matching so the
// output is deterministic even when the email itself is also bad.
func CheckEmail(email string, opts Options) Result {
	if opts.maxTypeErr {
		return newResult(false, email, errMaxType)
	}
	if opts.domainsTypeErr {
		return newResult(false, email, errDomainsType)
	}

	// Unrestricted mode: no allow-list supplied.
	if len(opts.Domains) == 0 {
		return newResult(unrestrictedPattern(maxTLD(opts.Max)).MatchString(email), email, "")
	}

	// Domain-restricted mode.
	if opts.Max != 0 {
		return newResult(false, email, errMaxWithDomains)
	}

	if len(opts.Domains) == 1 {
		domain := opts.Domains[0]
		if !IsDomain(domain) {
			return newResult(false, email, "`"+domain+"` is not a valid domain.")
		}
		label, ext := splitDomain(domain)
		return newResult(restrictedPattern(label, ext).MatchString(email), email, "")
	}

	// The allow-list itself is validated before any email matching; a
	// bad entry fails the call even if another entry would have matched.
	if res := CheckDomains(opts.Domains); !res.Valid {
		return newResult(false, email, res.Error)
	}
	for _, domain := range opts.Domains {
		label, ext := splitDomain(domain)
		if restrictedPattern(label, ext).MatchString(email) {
			return newResult(true, email, "")
		}
	}
	return newResult(false, email, "")
}

// IsEmail reports whether email is valid in unrestricted mode with the
// default TLD length bound.
func IsEmail(email string) bool {
	return CheckEmail(email, Options{}).Valid
}

// CheckDomains verifies that every entry of an allow-list is
// individually well-formed per IsDomain. On failure the message lists
// every offending domain in original order, comma-space-joined inside
// square brackets. This validates configuration, not an email.
func CheckDomains(domains []string) Result {
	var bad []string
	for _, d := range domains {
		if !IsDomain(d) {
			bad = append(bad, d)
		}
	}
	if len(bad) > 0 {
		return newResult(false, "", "["+strings.Join(bad, ", ")+"] are not valid domains.")
	}
	return newResult(true, "", "")
}

// maxTLD resolves the effective TLD length bound. Values below 2 would
// produce an invalid repetition range and values above 1000 exceed the
// regexp parser's repeat-count limit, so both clamp rather than
// panicking at pattern construction.
func maxTLD(max int) int {
	if max < 2 {
		return DefaultMaxTLD
	}
	if max > maxRepeatCount {
		return maxRepeatCount
	}
	return max
}
