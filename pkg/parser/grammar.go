package parser

import (
	"fmt"

	"github.com/yaklabco/msgparse/pkg/ast"
)

// cursor is a position inside the (sub)input being parsed.
type cursor struct {
	// rest runs from the position to the end of the (sub)input.
	rest string

	// start is the offset of rest in the full input.
	start int

	// prev is the rune before the position within the (sub)input, or
	// noRune at its start.
	prev rune

	// depth counts the spans enclosing the (sub)input.
	depth int
}

// span returns the source span of an element consuming n bytes at c.
func (c cursor) span(n int) ast.Span {
	return ast.Span{Start: c.start, End: c.start + n}
}

// leaf builds an element without children that consumed n bytes at c.
func (c cursor) leaf(kind ast.Kind, n int, value string) *ast.Element {
	return &ast.Element{Kind: kind, Source: c.span(n), Value: value}
}

// recognizeFunc reads one element at the start of c.rest and returns it
// with the number of bytes consumed.
type recognizeFunc func(p *Parser, c cursor) (*ast.Element, int, error)

type recognizer struct {
	name      string
	recognize recognizeFunc
}

// grammar is an ordered list of recognizers. The first match wins.
type grammar []recognizer

func (g grammar) match(p *Parser, c cursor) (*ast.Element, int, error) {
	for _, r := range g {
		element, n, err := r.recognize(p, c)
		if err != nil {
			continue
		}
		if element == nil || n <= 0 || n > len(c.rest) {
			return nil, 0, fmt.Errorf("%w: %s consumed %d of %d bytes", ErrInternal, r.name, n, len(c.rest))
		}
		return element, n, nil
	}
	return nil, 0, ErrNoElement
}

type grammarID int

const (
	grammarText grammarID = iota
	grammarDesktop
	grammarMarkdown
	grammarLabel
	grammarCount
)

// errTooDeep rejects a nested span beyond the configured depth.
var errTooDeep = fmt.Errorf("%w: nesting limit reached", ErrNoElement)

func newGrammars() [grammarCount]grammar {
	text := grammar{
		{"hashtag", hashtag},
		{"bot command", botCommand},
		{"fediverse handle", fediverseHandle},
		{"email address", emailAddress},
		{"link", link},
		{"linebreak", linebreak},
	}

	emphasis := func(content grammarID) grammar {
		return grammar{
			{"bold", emphasisSpan("**", ast.KindBold, content)},
			{"bold", emphasisSpan("__", ast.KindBold, content)},
			{"italics", emphasisSpan("_", ast.KindItalics, content)},
			{"italics", emphasisSpan("*", ast.KindItalics, content)},
			{"strikethrough", emphasisSpan("~~", ast.KindStrikeThrough, content)},
		}
	}

	var grammars [grammarCount]grammar

	grammars[grammarText] = text

	grammars[grammarDesktop] = concat(
		grammar{
			{"labeled link", labeledLink(grammarText)},
			{"delimited email address", delimitedEmailAddress},
			{"delimited link", delimitedLink},
		},
		text,
	)

	grammars[grammarMarkdown] = concat(
		emphasis(grammarMarkdown),
		grammar{
			{"code block", codeBlock},
			{"inline code", inlineCode},
			{"labeled link", labeledLink(grammarLabel)},
			{"delimited email address", delimitedEmailAddress},
			{"delimited link", delimitedLink},
		},
		text,
	)

	grammars[grammarLabel] = concat(
		emphasis(grammarLabel),
		grammar{{"inline code", inlineCode}},
	)

	return grammars
}

func concat(parts ...grammar) grammar {
	var g grammar
	for _, part := range parts {
		g = append(g, part...)
	}
	return g
}
