package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsWhiteSpace reports whether r is a space, tab, carriage return or
// newline.
func IsWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// IsWhiteSpaceButNotLinebreak reports whether r is a space or tab.
func IsWhiteSpaceButNotLinebreak(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsUnicodeWhiteSpace reports whether r is ASCII whitespace or a Unicode
// space separator such as U+00A0 or U+3000.
func IsUnicodeWhiteSpace(r rune) bool {
	return unicode.Is(unicodeSpaceTable, r)
}

// IsUnicodePunctuation reports whether r is Unicode punctuation or a
// symbol.
func IsUnicodePunctuation(r rune) bool {
	return unicode.Is(punctuationTable, r)
}

// DirectDelimited matches tag, the content up to the next tag, and tag
// again. Content must be non-empty and must not start or end with
// whitespace. It returns the content and the rest of input.
func DirectDelimited(input, tag string) (string, string, error) {
	if tag == "" || !strings.HasPrefix(input, tag) {
		return "", input, ErrNoElement
	}

	body := input[len(tag):]
	end := strings.Index(body, tag)
	if end < 0 {
		return "", input, ErrNoElement
	}

	content := body[:end]
	if content == "" {
		return "", input, ErrNoContent
	}

	first, _ := utf8.DecodeRuneInString(content)
	last, _ := utf8.DecodeLastRuneInString(content)
	if IsWhiteSpace(first) || IsWhiteSpace(last) {
		return "", input, ErrInvalidWhiteSpaceFound
	}

	return content, body[end+len(tag):], nil
}

// lastRune returns the last rune of s, or noRune.
func lastRune(s string) rune {
	if s == "" {
		return noRune
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// noRune stands for "start of input" wherever a previous rune is expected.
const noRune rune = -1

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
