package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/msgparse/pkg/ast"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind ast.Kind
		want string
	}{
		{ast.KindText, "Text"},
		{ast.KindTag, "Tag"},
		{ast.KindLinebreak, "Linebreak"},
		{ast.KindBold, "Bold"},
		{ast.KindItalics, "Italics"},
		{ast.KindStrikeThrough, "StrikeThrough"},
		{ast.KindInlineCode, "InlineCode"},
		{ast.KindCodeBlock, "CodeBlock"},
		{ast.KindEmailAddress, "EmailAddress"},
		{ast.KindBotCommandSuggestion, "BotCommandSuggestion"},
		{ast.KindLink, "Link"},
		{ast.KindLabeledLink, "LabeledLink"},
		{ast.Kind(200), "Kind(200)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range ast.Kinds() {
		got, ok := ast.ParseKind(kind.String())
		assert.True(t, ok, kind.String())
		assert.Equal(t, kind, got)
	}

	_, ok := ast.ParseKind("Heading")
	assert.False(t, ok)
}

func TestKindIsFormatting(t *testing.T) {
	t.Parallel()

	assert.True(t, ast.KindBold.IsFormatting())
	assert.True(t, ast.KindItalics.IsFormatting())
	assert.True(t, ast.KindStrikeThrough.IsFormatting())
	assert.False(t, ast.KindLabeledLink.IsFormatting())
	assert.False(t, ast.KindInlineCode.IsFormatting())
}

func TestSpan(t *testing.T) {
	t.Parallel()

	span := ast.Span{Start: 2, End: 5}
	assert.Equal(t, 3, span.Len())
	assert.False(t, span.IsEmpty())
	assert.True(t, span.Contains(2))
	assert.True(t, span.Contains(4))
	assert.False(t, span.Contains(5))
	assert.Equal(t, "llo", span.In("hello"))
	assert.Empty(t, span.In("he"))
	assert.True(t, ast.Span{Start: 3, End: 3}.IsEmpty())
}
