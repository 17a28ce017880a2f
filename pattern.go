package checkemail

import (
	"fmt"
	"regexp"
	"strings"
)

// localPart is the grammar for the token groups on either side of the
// '@': one or more word characters, optionally interleaved with single
// '.' or '-' separators. No two separators may be adjacent and a group
// never starts or ends with one.
const localPart = `\w+([.-]?\w+)*`

// maxRepeatCount is the largest repetition count regexp/syntax accepts
// in a {m,n} range.
const maxRepeatCount = 1000

// domainPattern matches a bare label.tld domain: a word-character label,
// exactly one dot, and an alphabetic TLD of at least two letters.
// Subdomains, multi-level TLDs, and leading or trailing characters are
// all rejected.
var domainPattern = regexp.MustCompile(`^\w+\.[a-zA-Z]{2,}$`)

// IsDomain reports whether domain is well-formed as label.tld.
func IsDomain(domain string) bool {
	return domainPattern.MatchString(domain)
}

// splitDomain decomposes a domain into its label and extension. Only
// the first two dot-delimited segments are considered; anything after a
// second dot is dropped. Multi-level domains such as a.b.co.uk are not
// specially supported.
func splitDomain(domain string) (label, ext string) {
	parts := strings.SplitN(domain, ".", 3)
	label = parts[0]
	if len(parts) > 1 {
		ext = parts[1]
	}
	return label, ext
}

// unrestrictedPattern compiles the generic email grammar: local part,
// '@', domain part, then one or more dot-prefixed extension groups of
// length 2..max. Case-sensitive; construction is pure and deterministic
// for a given max.
func unrestrictedPattern(max int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^%s@%s(\.\w{2,%d})+$`, localPart, localPart, max))
}

// restrictedPattern compiles an exact-domain pattern for label.ext.
// Callers must have passed the domain through IsDomain first; that
// guarantees label and ext contain no regexp metacharacters.
func restrictedPattern(label, ext string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^%s@%s\.%s$`, localPart, label, ext))
}
