// Package security contains the input sanitization, validation, and rate
// limiting used before untrusted strings reach the record store or a
// rendering surface.
package security

import (
	"regexp"
	"strings"
)

// htmlEscaper escapes the HTML-significant characters to entity form.
// Escaping is a single pass, so an already-escaped string gets its ampersands
// escaped again; callers that need a fixed point must not double-apply.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
	"/", "&#x2F;",
)

var (
	scriptBlockRe  = regexp.MustCompile(`(?i)<script[^>]*>.*?</script>`)
	jsURIRe        = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe = regexp.MustCompile(`(?i)on\w+\s*=`)
	evalRe         = regexp.MustCompile(`(?i)eval\s*\(`)
	expressionRe   = regexp.MustCompile(`(?i)expression\s*\(`)
)

// xssPatterns is the fixed detector set used by HasXSSPatterns.
var xssPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)eval\s*\(`),
	regexp.MustCompile(`(?i)<iframe`),
	regexp.MustCompile(`(?i)<object`),
	regexp.MustCompile(`(?i)<embed`),
	regexp.MustCompile(`(?i)expression\s*\(`),
	regexp.MustCompile(`(?i)vbscript:`),
}

// SanitizeHTML escapes the five HTML-significant characters plus '/' to their
// entity form. Empty input yields "". Every untrusted string must pass
// through here before insertion into rendered markup.
func SanitizeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

// SanitizeInput trims s and strips dangerous patterns (script blocks,
// javascript: URIs, inline event handlers, eval(, expression() before
// escaping with SanitizeHTML. Stripping happens first so escaping cannot
// re-expose a pattern hidden by a partial match.
func SanitizeInput(s string) string {
	if s == "" {
		return ""
	}
	s = strings.TrimSpace(s)
	s = scriptBlockRe.ReplaceAllString(s, "")
	s = jsURIRe.ReplaceAllString(s, "")
	s = eventHandlerRe.ReplaceAllString(s, "")
	s = evalRe.ReplaceAllString(s, "")
	s = expressionRe.ReplaceAllString(s, "")
	return SanitizeHTML(s)
}

// HasXSSPatterns reports whether s matches any entry of the fixed,
// case-insensitive XSS pattern set. It is a pre-check applied to form input
// before acceptance, independent of sanitization.
func HasXSSPatterns(s string) bool {
	for _, p := range xssPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
