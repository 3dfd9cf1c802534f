package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/msgparse/pkg/ast"
	"github.com/yaklabco/msgparse/pkg/linkurl"
)

// maxBotCommandLength bounds the characters after the first letter of a
// bot command.
const maxBotCommandLength = 255

func hashtag(_ *Parser, c cursor) (*ast.Element, int, error) {
	if !strings.HasPrefix(c.rest, "#") {
		return nil, 0, ErrNoElement
	}

	n := 1
	for n < len(c.rest) {
		r, size := utf8.DecodeRuneInString(c.rest[n:])
		if (r == utf8.RuneError && size <= 1) || !isHashtagChar(r) {
			break
		}
		n += size
	}
	if n == 1 {
		return nil, 0, ErrNoContent
	}

	return c.leaf(ast.KindTag, n, c.rest[:n]), n, nil
}

func isBotCommandChar(b byte) bool {
	switch {
	case isASCIILetter(rune(b)), isASCIIDigit(rune(b)):
		return true
	default:
		return b == '@' || b == '_' || b == '.' || b == '/' || b == '-'
	}
}

// botCommand reads "/" + letter + command characters. It only applies at
// the start of a word. A command with a second "/" is returned as Text.
func botCommand(_ *Parser, c cursor) (*ast.Element, int, error) {
	if c.prev != noRune && !IsWhiteSpace(c.prev) {
		return nil, 0, ErrPrecedingWhitespaceMissing
	}

	s := c.rest
	if len(s) < 2 || s[0] != '/' || !isASCIILetter(rune(s[1])) {
		return nil, 0, ErrNoElement
	}

	n := 2
	for n < len(s) && n-2 <= maxBotCommandLength && isBotCommandChar(s[n]) {
		n++
	}
	if n-2 > maxBotCommandLength {
		return nil, 0, ErrNoElement
	}

	if strings.Contains(s[1:n], "/") {
		return c.leaf(ast.KindText, n, s[:n]), n, nil
	}
	return c.leaf(ast.KindBotCommandSuggestion, n, s[:n]), n, nil
}

// atWordStart gates the address and link recognizers. Inside a word they
// would only match a suffix of a candidate that already failed at the
// word start. The domain of a rejected email address counts as inside.
func atWordStart(prev rune) bool {
	return prev == noRune || (!isAlphanumeric(prev) && prev != '@')
}

// fediverseHandle reads "@" + email address and returns it as Text so
// that "@name@domain.tld" is not offered as a contact address.
func fediverseHandle(p *Parser, c cursor) (*ast.Element, int, error) {
	if !atWordStart(c.prev) || !strings.HasPrefix(c.rest, "@") {
		return nil, 0, ErrNoElement
	}

	n, err := p.matchEmail(c.rest[1:])
	if err != nil {
		return nil, 0, err
	}

	n++
	return c.leaf(ast.KindText, n, c.rest[:n]), n, nil
}

func emailAddress(p *Parser, c cursor) (*ast.Element, int, error) {
	if !atWordStart(c.prev) {
		return nil, 0, ErrNoElement
	}

	n, err := p.matchEmail(c.rest)
	if err != nil {
		return nil, 0, err
	}
	return c.leaf(ast.KindEmailAddress, n, c.rest[:n]), n, nil
}

func link(_ *Parser, c cursor) (*ast.Element, int, error) {
	if !atWordStart(c.prev) {
		return nil, 0, ErrNoElement
	}

	dest, rest, err := linkurl.Parse(c.rest)
	if err != nil {
		return nil, 0, err
	}

	n := len(c.rest) - len(rest)
	element := c.leaf(ast.KindLink, n, dest.Target)
	element.Destination = &dest
	return element, n, nil
}

func linebreak(_ *Parser, c cursor) (*ast.Element, int, error) {
	if !strings.HasPrefix(c.rest, "\n") {
		return nil, 0, ErrNoElement
	}
	return c.leaf(ast.KindLinebreak, 1, "\n"), 1, nil
}
