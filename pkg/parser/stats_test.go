package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/msgparse/pkg/parser"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	input := "#news /start mail me@delta.chat or see https://münchen.de"
	stats := parser.Summarize(input, parser.ParseOnlyText(input))

	assert.Equal(t, 7, stats.Elements)
	assert.Equal(t, map[string]int{
		"Text":                 3,
		"Tag":                  1,
		"BotCommandSuggestion": 1,
		"EmailAddress":         1,
		"Link":                 1,
	}, stats.ByKind)
	assert.Equal(t, 1, stats.Depth)
	assert.Equal(t, []string{"#news"}, stats.Hashtags)
	assert.Equal(t, []string{"/start"}, stats.BotCommands)
	assert.Equal(t, []string{"me@delta.chat"}, stats.Emails)

	require.Len(t, stats.Links, 1)
	assert.Equal(t, "https://münchen.de", stats.Links[0].Target)
	require.Len(t, stats.PunycodeWarnings, 1)
	assert.Equal(t, "xn--mnchen-3ya.de", stats.PunycodeWarnings[0].ASCIIHostname)

	assert.False(t, stats.EmojiOnly)
	assert.Zero(t, stats.EmojiCount)
}

func TestSummarize_Nested(t *testing.T) {
	t.Parallel()

	input := "**[_here_](https://delta.chat)**"
	stats := parser.Summarize(input, parser.ParseMarkdownText(input))

	assert.Equal(t, 4, stats.Elements)
	assert.Equal(t, 4, stats.Depth)
	require.Len(t, stats.Links, 1)
	assert.Equal(t, "delta.chat", stats.Links[0].Hostname)
}

func TestSummarize_EmojiOnly(t *testing.T) {
	t.Parallel()

	input := "🔥🔥"
	stats := parser.Summarize(input, parser.ParseOnlyText(input))

	assert.True(t, stats.EmojiOnly)
	assert.Equal(t, 2, stats.EmojiCount)
	assert.Equal(t, 1, stats.Elements)
}

func TestStats_Merge(t *testing.T) {
	t.Parallel()

	first := parser.Summarize("#a https://delta.chat", parser.ParseOnlyText("#a https://delta.chat"))
	second := parser.Summarize("**#b**", parser.ParseMarkdownText("**#b**"))

	var total parser.Stats
	total.Merge(first)
	total.Merge(second)

	assert.Equal(t, first.Elements+second.Elements, total.Elements)
	assert.Equal(t, []string{"#a", "#b"}, total.Hashtags)
	assert.Equal(t, 2, total.ByKind["Tag"])
	assert.Equal(t, 2, total.Depth)
	assert.Len(t, total.Links, 1)
}
