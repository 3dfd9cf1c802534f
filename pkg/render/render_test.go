package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/msgparse/pkg/parser"
	"github.com/yaklabco/msgparse/pkg/render"
)

func TestJSON_Compact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "spans and text elements",
			input: "**hi** #tag\n",
			want:  `[{"t":"Bold","c":[{"t":"Text","c":"hi"}]},{"t":"Text","c":" "},{"t":"Tag","c":"#tag"},{"t":"Linebreak"}]`,
		},
		{
			name:  "link",
			input: "https://delta.chat/?a=1&b=2",
			want:  `[{"t":"Link","c":{"destination":{"target":"https://delta.chat/?a=1&b=2","hostname":"delta.chat","scheme":"https"}}}]`,
		},
		{
			name:  "labeled link",
			input: "[go](https://delta.chat)",
			want:  `[{"t":"LabeledLink","c":{"label":[{"t":"Text","c":"go"}],"destination":{"target":"https://delta.chat","hostname":"delta.chat","scheme":"https"}}}]`,
		},
		{
			name:  "code block with language",
			input: "```js\nx\n```",
			want:  `[{"t":"CodeBlock","c":{"language":"js","content":"x"}}]`,
		},
		{
			name:  "code block without language",
			input: "``` x```",
			want:  `[{"t":"CodeBlock","c":{"language":null,"content":"x"}}]`,
		},
		{
			name:  "email and command",
			input: "/help me@delta.chat",
			want:  `[{"t":"BotCommandSuggestion","c":"/help"},{"t":"Text","c":" "},{"t":"EmailAddress","c":"me@delta.chat"}]`,
		},
		{
			name:  "empty",
			input: "",
			want:  `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := render.JSON(&buf, parser.ParseMarkdownText(tt.input), render.Options{Compact: true})
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}

func TestJSON_Punycode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, parser.ParseOnlyText("http://münchen.de"), render.Options{}))

	assert.Contains(t, buf.String(), `"ascii_hostname": "xn--mnchen-3ya.de"`)
	assert.Contains(t, buf.String(), `"original_hostname": "münchen.de"`)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.YAML(&buf, parser.ParseMarkdownText("**hi**\n#tag")))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, "Bold", decoded[0]["t"])
	assert.Equal(t, "Linebreak", decoded[1]["t"])
	assert.NotContains(t, decoded[1], "c")
	assert.Equal(t, "#tag", decoded[2]["c"])
}

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello world", want: "hello world"},
		{name: "delimiters dropped", input: "**bold** _it_ ~~gone~~", want: "bold it gone"},
		{name: "label instead of target", input: "see [here](https://delta.chat).", want: "see here."},
		{name: "inline code", input: "run `make`", want: "run make"},
		{name: "linebreaks kept", input: "a\nb", want: "a\nb"},
		{name: "links kept", input: "https://delta.chat #tag", want: "https://delta.chat #tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, render.Text(parser.ParseMarkdownText(tt.input)))
		})
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	elements := parser.ParseMarkdownText("**x**")

	for _, format := range []render.Format{render.FormatJSON, render.FormatYAML, render.FormatText} {
		var buf bytes.Buffer
		require.NoError(t, render.Write(&buf, format, elements, render.Options{}), format)
		assert.NotEmpty(t, buf.String(), format)
	}

	var buf bytes.Buffer
	assert.Error(t, render.Write(&buf, render.Format("html"), elements, render.Options{}))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    render.Format
		wantErr bool
	}{
		{input: "", want: render.FormatJSON},
		{input: "json", want: render.FormatJSON},
		{input: "yaml", want: render.FormatYAML},
		{input: "text", want: render.FormatText},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := render.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}
