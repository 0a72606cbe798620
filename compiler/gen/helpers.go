package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// Common acronyms kept upper-case in generated identifiers.
	for _, w := range []string{"API", "ID", "SKU", "SQL", "UI", "URI", "URL", "UUID"} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// Pascal converts a snake_case property name to a PascalCase identifier.
func Pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	for i, w := range words {
		if u := strings.ToUpper(w); isAcronym(u) {
			words[i] = u
			continue
		}
		words[i] = rules.Capitalize(w)
	}
	return strings.Join(words, "")
}

// Camel converts a snake_case property name to a camelCase identifier.
func Camel(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 0 {
		return s
	}
	out := strings.ToLower(words[0][:1]) + words[0][1:]
	for _, w := range words[1:] {
		if u := strings.ToUpper(w); isAcronym(u) {
			out += u
			continue
		}
		out += rules.Capitalize(w)
	}
	return out
}

// Snake converts an identifier to its snake_case form, used for the
// struct tags of generated filter fields.
func Snake(s string) string {
	return rules.Underscore(s)
}

// PathIdent flattens a dotted property path into a single PascalCase
// identifier, e.g. "customer.name" becomes "CustomerName".
func PathIdent(path string) string {
	parts := strings.Split(path, ".")
	for i, p := range parts {
		parts[i] = Pascal(p)
	}
	return strings.Join(parts, "")
}

func isSeparator(r rune) bool { return r == '_' || r == '-' || r == ' ' }

func isAcronym(word string) bool {
	_, ok := acronyms[word]
	return ok
}
