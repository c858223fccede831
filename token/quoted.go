package token

import (
	"regexp"
	"strings"
)

var (
	// numberPat matches scalar text that a TOON reader would take for a
	// number literal: optional leading -, digits, optional fraction,
	// optional exponent. The exponent letter is case-insensitive.
	numberPat = regexp.MustCompile(`^-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?$`)

	// leadingZeroPat matches octal-looking text such as "007".
	leadingZeroPat = regexp.MustCompile(`^0\d+$`)

	keyPat = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
)

// NeedsQuote reports whether a string value cannot be written bare
// under the given active delimiter. A bare string must be non-empty,
// free of padding whitespace, not read back as a keyword or number,
// and contain none of the characters that carry structure in TOON
// output.
func NeedsQuote(v, delim string) bool {
	if v == "" {
		return true
	}
	if strings.TrimSpace(v) != v {
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	if numberPat.MatchString(v) || leadingZeroPat.MatchString(v) {
		return true
	}
	if strings.ContainsAny(v, ":\"\\[]{}\n\r\t") {
		return true
	}
	if strings.Contains(v, delim) {
		return true
	}
	// a leading dash reads as a list-item marker
	return v[0] == '-'
}

// Quote wraps v in double quotes, escaping backslash, double quote,
// newline, carriage return and tab. Backslash goes first so escapes
// inserted later are not themselves re-escaped.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// KeyNeedsQuote reports whether an object key cannot be written bare.
// Bare keys are identifier-like: a letter or underscore followed by
// letters, digits, underscores or dots.
func KeyNeedsQuote(k string) bool {
	return !keyPat.MatchString(k)
}

// QuoteKey renders a key, quoting and escaping only when needed.
func QuoteKey(k string) string {
	if KeyNeedsQuote(k) {
		return Quote(k)
	}
	return k
}
