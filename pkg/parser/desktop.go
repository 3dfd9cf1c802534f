package parser

import (
	"strings"

	"github.com/yaklabco/msgparse/pkg/ast"
	"github.com/yaklabco/msgparse/pkg/linkurl"
)

// labeledLink reads "[label](url)". The label is parsed with the given
// grammar. The url must be a link followed directly by ")".
func labeledLink(label grammarID) recognizeFunc {
	return func(p *Parser, c cursor) (*ast.Element, int, error) {
		s := c.rest
		if !strings.HasPrefix(s, "[") {
			return nil, 0, ErrNoElement
		}

		closing := strings.IndexByte(s, ']')
		switch {
		case closing < 0:
			return nil, 0, ErrNoElement
		case closing == 1:
			return nil, 0, ErrNoContent
		case closing+1 >= len(s) || s[closing+1] != '(':
			return nil, 0, ErrNoElement
		}

		if c.depth >= p.maxDepth {
			return nil, 0, errTooDeep
		}

		dest, rest, err := linkurl.ParseLabelled(s[closing+2:])
		if err != nil {
			return nil, 0, err
		}
		if !strings.HasPrefix(rest, ")") {
			return nil, 0, ErrUnexpectedContent
		}

		n := len(s) - len(rest) + 1
		raw := s[1:closing]
		return &ast.Element{
			Kind:        ast.KindLabeledLink,
			Source:      c.span(n),
			Value:       raw,
			Children:    p.run(label, raw, c.start+1, c.depth+1),
			Destination: &dest,
		}, n, nil
	}
}

// angleDelimited returns the text between "<" and the next ">".
func angleDelimited(s string) (string, error) {
	if !strings.HasPrefix(s, "<") {
		return "", ErrNoElement
	}
	closing := strings.IndexByte(s, '>')
	switch {
	case closing < 0:
		return "", ErrNoElement
	case closing == 1:
		return "", ErrNoContent
	}
	return s[1:closing], nil
}

func delimitedEmailAddress(p *Parser, c cursor) (*ast.Element, int, error) {
	content, err := angleDelimited(c.rest)
	if err != nil {
		return nil, 0, err
	}

	n, err := p.matchEmail(content)
	if err != nil {
		return nil, 0, err
	}
	if n != len(content) {
		return nil, 0, ErrUnexpectedContent
	}

	return c.leaf(ast.KindEmailAddress, len(content)+2, content), len(content) + 2, nil
}

func delimitedLink(_ *Parser, c cursor) (*ast.Element, int, error) {
	content, err := angleDelimited(c.rest)
	if err != nil {
		return nil, 0, err
	}

	dest, rest, err := linkurl.ParseLabelled(content)
	if err != nil {
		return nil, 0, err
	}
	if rest != "" {
		return nil, 0, ErrUnexpectedContent
	}

	n := len(content) + 2
	element := c.leaf(ast.KindLink, n, dest.Target)
	element.Destination = &dest
	return element, n, nil
}
