package statusx

import "net/http"

// Unknown is the reason phrase reported for status codes missing from the
// table. Callers relying on it can compare against this constant instead of
// the literal string.
const Unknown = "Unknown Error"

// Text returns the reason phrase for an HTTP status code, falling back to
// Unknown for codes net/http has no entry for (including 0).
func Text(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return Unknown
}

// Known reports whether a status code has a reason phrase of its own.
func Known(code int) bool {
	return http.StatusText(code) != ""
}
