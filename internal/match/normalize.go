package match

import (
	"slices"
	"strings"
	"unicode"
)

// stemSuffixes are trailing tokens that name a builder artifact rather than
// the type or property itself ("OrderBuilder", "orderValue").
var stemSuffixes = []string{"builder", "value"}

// Tokens splits an identifier into lowercase words at case changes and at
// '_', '-' and ' '. An acronym stays one word: "XMLParser" yields
// ["xml", "parser"].
func Tokens(s string) []string {
	var (
		tokens []string
		word   []rune
	)

	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if len(word) > 0 && startsWord(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return tokens
}

// Normalize folds an identifier so that spelling variants of the same name
// compare equal: "line_item", "LineItem" and "lineItem" all become
// "lineitem".
func Normalize(s string) string {
	return strings.Join(Tokens(s), "")
}

// Stem is Normalize with a trailing builder suffix removed, so a config
// entry naming "OrderBuilder" still ranks the Order interface first.
func Stem(s string) string {
	tokens := Tokens(s)
	if len(tokens) > 1 && slices.Contains(stemSuffixes, tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}

	return strings.Join(tokens, "")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsWord reports whether runes[i] begins a new word: a lower-to-upper
// transition, or the last capital of an acronym followed by lowercase.
func startsWord(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
