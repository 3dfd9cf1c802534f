package parser

import (
	"github.com/yaklabco/msgparse/pkg/ast"
	"github.com/yaklabco/msgparse/pkg/emoji"
	"github.com/yaklabco/msgparse/pkg/linkurl"
)

// Stats summarizes a parsed message.
type Stats struct {
	// Elements counts all elements, nested ones included.
	Elements int `json:"elements" yaml:"elements"`

	// ByKind counts elements per kind name.
	ByKind map[string]int `json:"by_kind" yaml:"by_kind"`

	// Depth is the deepest nesting level.
	Depth int `json:"depth" yaml:"depth"`

	Links       []linkurl.Destination `json:"links,omitempty" yaml:"links,omitempty"`
	Hashtags    []string              `json:"hashtags,omitempty" yaml:"hashtags,omitempty"`
	BotCommands []string              `json:"bot_commands,omitempty" yaml:"bot_commands,omitempty"`
	Emails      []string              `json:"emails,omitempty" yaml:"emails,omitempty"`

	// PunycodeWarnings lists the warnings of all links, in order.
	PunycodeWarnings []linkurl.PunycodeWarning `json:"punycode_warnings,omitempty" yaml:"punycode_warnings,omitempty"`

	// EmojiOnly is set when the message consists of emoji only.
	EmojiOnly bool `json:"emoji_only" yaml:"emoji_only"`

	// EmojiCount is the number of emoji when EmojiOnly is set.
	EmojiCount int `json:"emoji_count,omitempty" yaml:"emoji_count,omitempty"`
}

// Summarize collects statistics for elements parsed from text.
func Summarize(text string, elements []*ast.Element) Stats {
	stats := Stats{
		ByKind: make(map[string]int),
		Depth:  ast.Depth(elements),
	}

	//nolint:errcheck,revive // the callback never fails
	ast.Walk(elements, func(e *ast.Element) error {
		stats.Elements++
		stats.ByKind[e.Kind.String()]++

		switch e.Kind {
		case ast.KindTag:
			stats.Hashtags = append(stats.Hashtags, e.Value)
		case ast.KindBotCommandSuggestion:
			stats.BotCommands = append(stats.BotCommands, e.Value)
		case ast.KindEmailAddress:
			stats.Emails = append(stats.Emails, e.Value)
		case ast.KindLink, ast.KindLabeledLink:
			if e.Destination == nil {
				return nil
			}
			stats.Links = append(stats.Links, *e.Destination)
			if e.Destination.Punycode != nil {
				stats.PunycodeWarnings = append(stats.PunycodeWarnings, *e.Destination.Punycode)
			}
		}
		return nil
	})

	stats.EmojiCount, stats.EmojiOnly = emoji.CountEmojisIfOnlyContainsEmoji(text)
	return stats
}

// Merge adds the counts and lists of other to s.
func (s *Stats) Merge(other Stats) {
	s.Elements += other.Elements
	if s.ByKind == nil {
		s.ByKind = make(map[string]int, len(other.ByKind))
	}
	for kind, count := range other.ByKind {
		s.ByKind[kind] += count
	}
	s.Depth = max(s.Depth, other.Depth)
	s.Links = append(s.Links, other.Links...)
	s.Hashtags = append(s.Hashtags, other.Hashtags...)
	s.BotCommands = append(s.BotCommands, other.BotCommands...)
	s.Emails = append(s.Emails, other.Emails...)
	s.PunycodeWarnings = append(s.PunycodeWarnings, other.PunycodeWarnings...)
	s.EmojiCount += other.EmojiCount
}
