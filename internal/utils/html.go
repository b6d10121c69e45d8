package utils

import "strings"

// htmlEscaper replaces the three characters significant in element content.
// strings.Replacer scans the input once, so "&" produced for "<" or ">" is
// never escaped again.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes '&', '<' and '>' in s. Quotes are left as-is; the
// result is meant for element content, not attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
