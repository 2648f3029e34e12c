// Package redact scrubs secrets and internal detail from error text before
// it is logged: connection credentials, tokens, SQL, and file paths.
package redact

import "regexp"

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order; earlier rules see the original text.
var rules = []rule{
	// user:password@ in postgres:// and similar URLs
	{regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.-]*://[^/\s@]+@`), "[REDACTED_CREDENTIAL]@"},
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), "[REDACTED_JWT]"},
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]+`), "Bearer [REDACTED_TOKEN]"},
	{regexp.MustCompile(`(?i)\b(password|passwd|pwd|secret|jwt_secret|api[_-]?key)(\s*[=:]\s*)['"]?[^'"&\s]+`), "$1$2[REDACTED]"},
	{regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)\b[^;]*?\b(FROM|INTO|SET|TABLE|INDEX)\b[^;"]*`), "[REDACTED_SQL]"},
	{regexp.MustCompile(`(?:/[\w.-]+){2,}`), "[REDACTED_PATH]"},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(?:\\[^\\\s]+)+`), "[REDACTED_PATH]"},
}

// String redacts sensitive information from s.
func String(s string) string {
	for _, r := range rules {
		if s == "" {
			return s
		}
		s = r.pattern.ReplaceAllString(s, r.placeholder)
	}
	return s
}

// Error redacts err.Error(). A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
