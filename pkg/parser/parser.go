// Package parser turns chat message text into an element tree.
//
// Three grammars are available. ModeText recognizes hashtags, bot
// commands, email addresses, links and line breaks. ModeDesktop adds
// "<url>", "<email>" and "[label](url)". ModeMarkdown further adds bold,
// italics, strikethrough, inline code and fenced code blocks.
//
// Parsing never fails: text that no recognizer accepts becomes Text
// elements, and the source spans of the returned elements always
// concatenate to the input. A Parser is immutable and safe for concurrent
// use.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/msgparse/pkg/ast"
)

// MaxNestingDepth is the default limit for nested spans. Deeper spans are
// kept as plain text.
const MaxNestingDepth = 64

// Mode selects the grammar used for a message.
type Mode string

const (
	// ModeText recognizes text elements only.
	ModeText Mode = "text"
	// ModeDesktop adds delimited and labeled links.
	ModeDesktop Mode = "desktop"
	// ModeMarkdown adds the markdown spans.
	ModeMarkdown Mode = "markdown"
)

// ErrUnknownMode is returned by ParseMode for unsupported names.
var ErrUnknownMode = errors.New("unknown parse mode")

// Modes returns all supported modes.
func Modes() []Mode {
	return []Mode{ModeText, ModeDesktop, ModeMarkdown}
}

// IsValid returns true if the mode is supported.
func (m Mode) IsValid() bool {
	switch m {
	case ModeText, ModeDesktop, ModeMarkdown:
		return true
	default:
		return false
	}
}

// ParseMode converts a case-insensitive mode name.
func ParseMode(name string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(name)))
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %q (want text, desktop or markdown)", ErrUnknownMode, name)
	}
	return mode, nil
}

func (m Mode) grammar() grammarID {
	switch m {
	case ModeDesktop:
		return grammarDesktop
	case ModeMarkdown:
		return grammarMarkdown
	default:
		return grammarText
	}
}

// Options configures a Parser.
type Options struct {
	// MaxDepth limits nested spans. Values below 1 use MaxNestingDepth.
	MaxDepth int

	// EmailValidator checks email address candidates.
	// If nil, MailValidator is used.
	EmailValidator EmailValidator
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		MaxDepth:       MaxNestingDepth,
		EmailValidator: MailValidator{},
	}
}

// Parser holds the grammars and settings for parsing messages.
type Parser struct {
	maxDepth  int
	validator EmailValidator
	grammars  [grammarCount]grammar
}

// New creates a parser with the given options.
func New(opts Options) *Parser {
	p := &Parser{
		maxDepth:  opts.MaxDepth,
		validator: opts.EmailValidator,
		grammars:  newGrammars(),
	}
	if p.maxDepth < 1 {
		p.maxDepth = MaxNestingDepth
	}
	if p.validator == nil {
		p.validator = MailValidator{}
	}
	return p
}

// MaxDepth returns the nesting limit in effect.
func (p *Parser) MaxDepth() int {
	return p.maxDepth
}

// Parse parses text with the grammar of mode. Unknown modes fall back to
// ModeText. The result is never nil.
func (p *Parser) Parse(text string, mode Mode) []*ast.Element {
	return p.run(mode.grammar(), text, 0, 0)
}

// ParseOnlyText parses text elements such as links and email addresses,
// excluding markdown.
func (p *Parser) ParseOnlyText(text string) []*ast.Element {
	return p.Parse(text, ModeText)
}

// ParseDesktopSet parses delimited and labeled links in addition to the
// text elements.
func (p *Parser) ParseDesktopSet(text string) []*ast.Element {
	return p.Parse(text, ModeDesktop)
}

// ParseMarkdownText parses all kinds of elements, including markdown.
func (p *Parser) ParseMarkdownText(text string) []*ast.Element {
	return p.Parse(text, ModeMarkdown)
}

type driverState int

const (
	stateScanning driverState = iota
	stateAccumulatingText
)

// run drives the grammar over text, which starts at offset base of the
// full input. While scanning, each position is offered to the grammar.
// When nothing matches, the driver accumulates one rune of text and scans
// again from the next position. It never backtracks.
func (p *Parser) run(id grammarID, text string, base, depth int) []*ast.Element {
	g := p.grammars[id]
	elements := make([]*ast.Element, 0, 1)

	state := stateScanning
	pos, textStart := 0, 0
	prev := noRune

	flush := func() {
		if state == stateAccumulatingText {
			elements = append(elements, &ast.Element{
				Kind:   ast.KindText,
				Source: ast.Span{Start: base + textStart, End: base + pos},
				Value:  text[textStart:pos],
			})
		}
	}

	for pos < len(text) {
		c := cursor{rest: text[pos:], start: base + pos, prev: prev, depth: depth}
		if element, n, err := g.match(p, c); err == nil {
			flush()
			state = stateScanning
			elements = append(elements, element)
			pos += n
			prev = lastRune(text[:pos])
			continue
		}

		if state == stateScanning {
			state = stateAccumulatingText
			textStart = pos
		}
		r, size := utf8.DecodeRuneInString(text[pos:])
		prev = r
		pos += size
	}
	flush()

	return elements
}

//nolint:gochecknoglobals // Immutable default instance.
var defaultParser = New(DefaultOptions())

// Parse parses text with the default parser.
func Parse(text string, mode Mode) []*ast.Element {
	return defaultParser.Parse(text, mode)
}

// ParseOnlyText parses text with the text element grammar.
func ParseOnlyText(text string) []*ast.Element {
	return defaultParser.ParseOnlyText(text)
}

// ParseDesktopSet parses text with the desktop grammar.
func ParseDesktopSet(text string) []*ast.Element {
	return defaultParser.ParseDesktopSet(text)
}

// ParseMarkdownText parses text with the markdown grammar.
func ParseMarkdownText(text string) []*ast.Element {
	return defaultParser.ParseMarkdownText(text)
}
