package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/msgparse/pkg/ast"
)

// emphasisSpan reads tag + content + tag and parses the content with the
// given grammar. Single character tags must also pass the flanking check.
func emphasisSpan(tag string, kind ast.Kind, content grammarID) recognizeFunc {
	return func(p *Parser, c cursor) (*ast.Element, int, error) {
		inner, rest, err := DirectDelimited(c.rest, tag)
		if err != nil {
			return nil, 0, err
		}
		if len(tag) == 1 && !flanks(tag[0], c.prev, inner, rest) {
			return nil, 0, ErrNoElement
		}
		if c.depth >= p.maxDepth {
			return nil, 0, errTooDeep
		}

		n := len(c.rest) - len(rest)
		return &ast.Element{
			Kind:     kind,
			Source:   c.span(n),
			Value:    inner,
			Children: p.run(content, inner, c.start+len(tag), c.depth+1),
		}, n, nil
	}
}

// flanks checks the delimiter run around inner. Content starting with
// punctuation needs whitespace, punctuation or the start of input before
// the opener, and content ending with punctuation needs the same after the
// closer. Underscores additionally must not touch letters or digits on the
// outside, so foo_bar_baz stays text.
func flanks(delim byte, prev rune, inner, rest string) bool {
	next := noRune
	if rest != "" {
		next, _ = utf8.DecodeRuneInString(rest)
	}
	first, _ := utf8.DecodeRuneInString(inner)
	last, _ := utf8.DecodeLastRuneInString(inner)

	if IsUnicodePunctuation(first) && !isBoundary(prev) {
		return false
	}
	if IsUnicodePunctuation(last) && !isBoundary(next) {
		return false
	}
	if delim == '_' && (isAlphanumeric(prev) || isAlphanumeric(next)) {
		return false
	}
	return true
}

func isBoundary(r rune) bool {
	return r == noRune || IsUnicodeWhiteSpace(r) || IsUnicodePunctuation(r)
}

func isLanguageChar(r rune) bool {
	switch {
	case isASCIILetter(r), isASCIIDigit(r):
		return true
	default:
		return r == '+' || r == '-' || r == '_' || r == '#' || r == '.'
	}
}

const fence = "```"

// codeBlock reads a fenced block. A language token may follow the opening
// fence directly and must be followed by whitespace. Blanks and one
// newline after it are skipped, trailing whitespace is trimmed.
func codeBlock(_ *Parser, c cursor) (*ast.Element, int, error) {
	s := c.rest
	if !strings.HasPrefix(s, fence) {
		return nil, 0, ErrNoElement
	}

	closing := strings.Index(s[len(fence):], fence)
	if closing < 0 {
		return nil, 0, ErrNoElement
	}
	body := s[len(fence) : len(fence)+closing]
	if body == "" {
		return nil, 0, ErrNoContent
	}

	language := ""
	first, _ := utf8.DecodeRuneInString(body)
	if !IsWhiteSpace(first) {
		end := strings.IndexFunc(body, func(r rune) bool { return !isLanguageChar(r) })
		if end <= 0 {
			return nil, 0, ErrNoElement
		}
		language, body = body[:end], body[end:]

		next, _ := utf8.DecodeRuneInString(body)
		if !IsWhiteSpaceButNotLinebreak(next) && next != '\n' && next != '\r' {
			return nil, 0, ErrNoElement
		}
	}

	body = strings.TrimLeft(body, " \t")
	body = strings.TrimPrefix(body, "\r")
	body = strings.TrimPrefix(body, "\n")

	content := strings.TrimRight(body, " \t\r\n")
	if content == "" {
		return nil, 0, ErrNoContent
	}

	n := 2*len(fence) + closing
	element := c.leaf(ast.KindCodeBlock, n, content)
	element.Language = language
	return element, n, nil
}

func inlineCode(_ *Parser, c cursor) (*ast.Element, int, error) {
	if !strings.HasPrefix(c.rest, "`") {
		return nil, 0, ErrNoElement
	}

	closing := strings.IndexByte(c.rest[1:], '`')
	switch {
	case closing < 0:
		return nil, 0, ErrNoElement
	case closing == 0:
		return nil, 0, ErrNoContent
	}

	n := closing + 2
	return c.leaf(ast.KindInlineCode, n, c.rest[1:n-1]), n, nil
}
