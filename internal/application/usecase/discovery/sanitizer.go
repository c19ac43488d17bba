package discovery

import (
	"strings"
	"unicode"
)

// SanitizeQuery strips raw search text down to characters the full-text
// query parser understands: ASCII alphanumerics, whitespace, and the
// operator characters `- _ | * "` (word joiners, boolean OR, prefix
// wildcard, phrase quoting). Everything else is dropped silently.
//
// "Alphanumeric" is deliberately ASCII-only so multi-byte input never
// reaches the query parser; whitespace keeps its Unicode definition.
func SanitizeQuery(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, c := range raw {
		switch {
		case c >= '0' && c <= '9',
			c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			unicode.IsSpace(c):
			b.WriteRune(c)
		case c == '-' || c == '_' || c == '|' || c == '*' || c == '"':
			b.WriteRune(c)
		}
	}
	return b.String()
}
