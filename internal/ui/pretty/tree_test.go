package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/msgparse/internal/ui/pretty"
	"github.com/yaklabco/msgparse/pkg/langdetect"
	"github.com/yaklabco/msgparse/pkg/parser"
)

func countOccurrences(s, sub string) int {
	return strings.Count(s, sub)
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

func renderTree(t *testing.T, text string, mode parser.Mode, opts pretty.TreeOptions) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, pretty.RenderTree(&buf, parser.Parse(text, mode), pretty.NewStyles(false), opts))
	return buf.String()
}

func TestRenderTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		mode  parser.Mode
		want  string
	}{
		{
			name:  "plain text",
			input: "hello",
			mode:  parser.ModeText,
			want:  "Text \"hello\"\n",
		},
		{
			name:  "nested emphasis",
			input: "**a _b_**",
			mode:  parser.ModeMarkdown,
			want:  "Bold\n  Text \"a \"\n  Italics\n    Text \"b\"\n",
		},
		{
			name:  "linebreak and tag",
			input: "#tag\nx",
			mode:  parser.ModeText,
			want:  "Tag \"#tag\"\nLinebreak\nText \"x\"\n",
		},
		{
			name:  "punycode link",
			input: "https://münchen.de",
			mode:  parser.ModeText,
			want:  "Link https://münchen.de punycode: xn--mnchen-3ya.de\n",
		},
		{
			name:  "code block with language",
			input: "```go\nx := 1\n```",
			mode:  parser.ModeMarkdown,
			want:  "CodeBlock (go) \"x := 1\"\n",
		},
		{
			name:  "empty",
			input: "",
			mode:  parser.ModeText,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderTree(t, tt.input, tt.mode, pretty.TreeOptions{}))
		})
	}
}

func TestRenderTree_LabeledLinkChildren(t *testing.T) {
	t.Parallel()

	got := renderTree(t, "[**docs**](https://delta.chat)", parser.ModeMarkdown, pretty.TreeOptions{})
	assert.Equal(t, "LabeledLink https://delta.chat\n  Bold\n    Text \"docs\"\n", got)
}

func TestRenderTree_Hints(t *testing.T) {
	t.Parallel()

	input := "```js\nlet a = 1\n```"
	elements := parser.Parse(input, parser.ModeMarkdown)
	hints := pretty.HintIndex(langdetect.Hints(elements))
	require.Len(t, hints, 1)

	var buf bytes.Buffer
	require.NoError(t, pretty.RenderTree(&buf, elements, pretty.NewStyles(false), pretty.TreeOptions{Hints: hints}))
	assert.Equal(t, "CodeBlock (JavaScript) \"let a = 1\"\n", buf.String())

	assert.Nil(t, pretty.HintIndex(nil))
}
