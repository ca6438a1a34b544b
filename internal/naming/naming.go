// Package naming provides the case and plural transforms used by every
// generator: PascalCase, camelCase, snake_case, kebab-case, and the derived
// CaseForms view of a collection or layer name.
package naming

import (
	"strings"
	"unicode"
)

// CaseForms is the derived, immutable view of a collection/layer name.
// All forms are computed once by ToCase.
type CaseForms struct {
	Singular         string
	Plural           string
	PascalCase       string
	PascalCasePlural string
	CamelCase        string
	CamelCasePlural  string
	UpperCase        string
	KebabCase        string
}

// Pascal converts kebab/snake/camel/Pascal input into PascalCase.
func Pascal(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = capitalize(strings.ToLower(word))
	}
	return strings.Join(words, "")
}

// Camel converts input into camelCase.
func Camel(s string) string {
	pascal := Pascal(s)
	if len(pascal) == 0 {
		return pascal
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// Snake converts input into snake_case.
func Snake(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// Kebab converts input into kebab-case.
func Kebab(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "-")
}

// ToCase computes every derived form of a name at once.
//
// Pluralization is a deliberately naive suffix rule: input ending in 's' is
// treated as already plural (singular strips the trailing 's'), anything else
// gets an appended 's'. Irregular plurals are not handled, so a collection
// named "category" yields "categorys". Callers that care should pass the
// plural form themselves.
func ToCase(s string) CaseForms {
	if s == "" {
		return CaseForms{}
	}

	var singular, plural string
	if strings.HasSuffix(s, "s") {
		plural = s
		singular = s[:len(s)-1]
	} else {
		singular = s
		plural = s + "s"
	}

	return CaseForms{
		Singular:         singular,
		Plural:           plural,
		PascalCase:       Pascal(singular),
		PascalCasePlural: Pascal(plural),
		CamelCase:        Camel(singular),
		CamelCasePlural:  Camel(plural),
		UpperCase:        strings.ToUpper(Snake(singular)),
		KebabCase:        Kebab(singular),
	}
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// splitWords splits a string into words (handles camelCase, PascalCase,
// snake_case, kebab-case).
func splitWords(s string) []string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	// Insert space before uppercase letters in camelCase/PascalCase
	var result strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			prev := rune(s[i-1])
			if !unicode.IsSpace(prev) && !unicode.IsUpper(prev) {
				result.WriteRune(' ')
			}
		}
		result.WriteRune(r)
	}

	return strings.Fields(result.String())
}
