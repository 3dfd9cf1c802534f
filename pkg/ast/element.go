// Package ast defines the element tree produced by the message parser.
//
// Elements are created fresh by every parse call and are not modified
// afterwards. All offsets are byte offsets into the text that was parsed,
// and every Value is a substring of that text.
package ast

import (
	"strconv"

	"github.com/yaklabco/msgparse/pkg/linkurl"
)

// Kind classifies an element.
type Kind uint8

// Element kinds.
const (
	KindText Kind = iota
	KindTag
	KindLinebreak

	// Markdown spans with nested children.
	KindBold
	KindItalics
	KindStrikeThrough

	KindInlineCode
	KindCodeBlock
	KindEmailAddress
	KindBotCommandSuggestion
	KindLink
	KindLabeledLink
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	KindText:                 "Text",
	KindTag:                  "Tag",
	KindLinebreak:            "Linebreak",
	KindBold:                 "Bold",
	KindItalics:              "Italics",
	KindStrikeThrough:        "StrikeThrough",
	KindInlineCode:           "InlineCode",
	KindCodeBlock:            "CodeBlock",
	KindEmailAddress:         "EmailAddress",
	KindBotCommandSuggestion: "BotCommandSuggestion",
	KindLink:                 "Link",
	KindLabeledLink:          "LabeledLink",
}

// String returns the kind name, e.g. "BotCommandSuggestion".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Kinds returns all element kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// IsFormatting returns true for the markdown emphasis spans.
func (k Kind) IsFormatting() bool {
	return k == KindBold || k == KindItalics || k == KindStrikeThrough
}

// Element is one node of the parsed message.
type Element struct {
	Kind Kind

	// Source is the full text the element consumed, delimiters included.
	Source Span

	// Value is the payload: the text, tag, address, command or code.
	// For emphasis spans and labeled links it is the raw inner text, for
	// links the target.
	Value string

	// Language is the code block language, empty when absent.
	Language string

	// Children holds emphasis content and labeled link labels.
	Children []*Element

	// Destination is set for links and labeled links.
	Destination *linkurl.Destination
}

// HasChildren returns true if this element has any children.
func (e *Element) HasChildren() bool {
	return len(e.Children) > 0
}

// IsLink returns true for links and labeled links.
func (e *Element) IsLink() bool {
	return e.Kind == KindLink || e.Kind == KindLabeledLink
}
