// Package langdetect names the language of code blocks.
//
// A fence token such as "js" is resolved to its canonical linguist name
// ("JavaScript") through go-enry aliases and extensions. Blocks without a
// token are guessed from their content: a shebang first, then a few highly
// indicative patterns, then the go-enry classifier.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/msgparse/pkg/ast"
)

// Confidence ranks how a language was determined.
type Confidence int

// Confidence levels, from none to an explicit fence token.
const (
	ConfidenceNone Confidence = iota
	ConfidenceLow
	ConfidenceMedium
	ConfidenceHigh
)

// String returns the lower-case level name.
func (c Confidence) String() string {
	switch c {
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	default:
		return "none"
	}
}

// Hint is a language guess for one code block.
type Hint struct {
	// Language is the canonical linguist name, or empty if unknown.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// Token is the fence token as written, if any.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	Confidence Confidence `json:"-" yaml:"-"`
}

// IsKnown reports whether a language was found.
func (h Hint) IsKnown() bool {
	return h.Language != ""
}

// Normalize resolves a fence token to its canonical linguist name.
func Normalize(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	if lang, ok := enry.GetLanguageByAlias(token); ok {
		return lang, true
	}
	if lang, safe := enry.GetLanguageByExtension("block." + strings.ToLower(token)); safe && lang != "" {
		return lang, true
	}
	return "", false
}

// classifierCandidates limits the classifier to languages commonly pasted
// into chats.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect guesses the language of code block content.
func Detect(content string) Hint {
	if strings.TrimSpace(content) == "" {
		return Hint{}
	}

	data := []byte(content)
	if lang, safe := enry.GetLanguageByShebang(data); safe {
		return Hint{Language: lang, Confidence: ConfidenceHigh}
	}

	if lang := detectByPattern(content); lang != "" {
		return Hint{Language: lang, Confidence: ConfidenceMedium}
	}

	if lang, safe := enry.GetLanguageByClassifier(data, classifierCandidates); safe && lang != "" {
		return Hint{Language: lang, Confidence: ConfidenceLow}
	}

	return Hint{}
}

// ForCodeBlock returns the hint for a code block element. An unknown fence
// token is reported with ConfidenceNone and is not overridden by content
// detection.
func ForCodeBlock(e *ast.Element) Hint {
	if e.Language == "" {
		return Detect(e.Value)
	}
	if lang, ok := Normalize(e.Language); ok {
		return Hint{Language: lang, Token: e.Language, Confidence: ConfidenceHigh}
	}
	return Hint{Token: e.Language}
}

// BlockHint pairs a code block with its hint.
type BlockHint struct {
	Source ast.Span `json:"source" yaml:"source"`
	Hint   `yaml:",inline"`
}

// Hints returns a hint for every code block in elements, in document
// order.
func Hints(elements []*ast.Element) []BlockHint {
	var hints []BlockHint
	for _, e := range ast.FindByKind(elements, ast.KindCodeBlock) {
		hints = append(hints, BlockHint{Source: e.Source, Hint: ForCodeBlock(e)})
	}
	return hints
}
