package common

import (
	"strings"
	"unicode"
)

// UnknownStr is returned by String methods of enums for out-of-range values.
const UnknownStr = "unknown"

// LowerFirst lowercases the leading rune, or the whole leading acronym
// ("ID" -> "id", "URLPath" -> "urlPath").
func LowerFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	switch {
	case n == 0:
		return s
	case n == 1 || n == len(runes):
		// single capital or all-caps word
	default:
		// keep the capital that starts the next word
		n--
	}

	for i := range n {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// SnakeCase converts a Go identifier to snake_case ("OrderLine" ->
// "order_line", "HTTPServer" -> "http_server").
func SnakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])

			if prevLower || nextLower {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// IsGoKeyword reports whether s is a reserved word and cannot be used as an
// identifier.
func IsGoKeyword(s string) bool {
	switch s {
	case "break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var":
		return true
	default:
		return false
	}
}
