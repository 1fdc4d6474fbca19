package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum   = regexp.MustCompile(`[^A-Za-z0-9]+`)
	identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// RemoveAccents removes accents from a string, converting accented characters to their base forms
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// Words breaks s into words on non-alphanumeric runs and camel case
// boundaries, after removing accents. "XMLHttp request" yields XML, Http,
// request.
func Words(s string) []string {
	s = RemoveAccents(strings.TrimSpace(s))
	var words []string
	for _, chunk := range nonAlnum.Split(s, -1) {
		if chunk != "" {
			words = append(words, splitCamel(chunk)...)
		}
	}
	return words
}

// splitCamel splits on lower-to-upper transitions and before the last capital
// of an upper case run that is followed by a lower case letter.
func splitCamel(s string) []string {
	var (
		parts []string
		start int
	)
	rs := []rune(s)
	for i := 1; i < len(rs); i++ {
		if !isUpper(rs[i]) {
			continue
		}
		if !isUpper(rs[i-1]) || (i+1 < len(rs) && !isUpper(rs[i+1])) {
			parts = append(parts, string(rs[start:i]))
			start = i
		}
	}
	return append(parts, string(rs[start:]))
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// ToPascalCase joins the words of s, each capitalized and the rest lower case
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String()
}

// ToCamelCase is ToPascalCase with a lower case first letter
func ToCamelCase(s string) string {
	return LowerFirst(ToPascalCase(s))
}

// LowerFirst lower-cases the first character of s
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// UpperFirst upper-cases the first character of s
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsIdentifier reports whether s can be used verbatim as a TypeScript identifier
func IsIdentifier(s string) bool {
	return identifier.MatchString(s)
}

// TypeName returns s unchanged when it is already an identifier, otherwise
// its PascalCase form. Tags name classes and files, so "pet store" becomes
// PetStore while "Pets" and "pet_store" are kept as written.
func TypeName(s string) string {
	return sanitize(s, ToPascalCase)
}

// MemberName is TypeName for methods and fields: the fallback is camelCase.
func MemberName(s string) string {
	return sanitize(s, ToCamelCase)
}

func sanitize(s string, convert func(string) string) string {
	if IsIdentifier(s) {
		return s
	}
	out := convert(s)
	if out == "" {
		return "_"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// QuotePropName quotes an object property name when it is not an identifier
func QuotePropName(name string) string {
	if IsIdentifier(name) {
		return name
	}
	return SingleQuote(name)
}

var singleQuoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// SingleQuote renders s as a single-quoted TypeScript string literal
func SingleQuote(s string) string {
	return "'" + singleQuoteEscaper.Replace(s) + "'"
}
