package checkemail

// Result is the outcome of a validation. Every failure mode, including
// configuration mistakes, is reported through this shape rather than a
// separate error channel; callers inspect Valid and treat Error as
// informational text.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// newResult builds a Result from a validity flag and optional context.
// Success suppresses all error text, even if a message was passed in.
// On failure the caller-supplied message wins; otherwise a default
// message naming the email is generated. When no email was supplied the
// default substitutes the literal token "null", matching the original
// check-email package.
func newResult(valid bool, email, errMsg string) Result {
	if valid {
		return Result{Valid: true}
	}
	if errMsg == "" {
		if email == "" {
			email = "null"
		}
		errMsg = email + " is not a valid email."
	}
	return Result{Valid: false, Error: errMsg}
}
