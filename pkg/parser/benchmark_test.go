package parser_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/msgparse/pkg/ast"
	"github.com/yaklabco/msgparse/pkg/parser"
)

// repetitive builds inputs where every position is a candidate start for
// some recognizer but no long element ever matches.
func repetitive(n int) []struct{ name, input string } {
	return []struct{ name, input string }{
		{"exclamation marks", strings.Repeat("!", n)},
		{"asterisks", strings.Repeat("*", n)},
		{"double asterisks", strings.Repeat("**", n)},
		{"parentheses after link", "https://x.com/" + strings.Repeat("(", n)},
		{"dotted labels", strings.Repeat("a.", n)},
		{"hyphenated labels", strings.Repeat("a-", n)},
		{"userinfo cut", strings.Repeat("http://a(@", n/10)},
		{"open brackets", strings.Repeat("[", n)},
		{"open angles", strings.Repeat("<", n)},
		{"at signs", strings.Repeat("@a", n)},
	}
}

func TestParse_RepetitiveInputIsLinear(t *testing.T) {
	t.Parallel()

	const budget = 5 * time.Second

	for _, tt := range repetitive(20000) {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, mode := range parser.Modes() {
				start := time.Now()
				elements := parser.Parse(tt.input, mode)
				elapsed := time.Since(start)

				assert.Less(t, elapsed, budget, "mode %s", mode)
				assertRoundTrip(t, tt.input, elements)
			}
		})
	}
}

func TestParse_RepetitiveInputElements(t *testing.T) {
	t.Parallel()

	t.Run("punctuation stays one text", func(t *testing.T) {
		t.Parallel()

		input := strings.Repeat("!", 5000)
		assert.Equal(t, []node{text(input)}, simplify(parser.ParseOnlyText(input)))
	})

	t.Run("link before unclosed parentheses", func(t *testing.T) {
		t.Parallel()

		parens := strings.Repeat("(", 5000)
		elements := parser.ParseOnlyText("https://x.com/" + parens)
		assert.Equal(t, []node{link("https://x.com/"), text(parens)}, simplify(elements))
	})

	t.Run("long link is cut", func(t *testing.T) {
		t.Parallel()

		input := "https://delta.chat/" + strings.Repeat("a", 3000)
		elements := parser.ParseOnlyText(input)
		require.NotEmpty(t, elements)
		assert.Equal(t, ast.KindLink, elements[0].Kind)
		assert.Len(t, elements[0].Value, 2048)
		assertRoundTrip(t, input, elements)
	})
}

func BenchmarkParse(b *testing.B) {
	for _, bm := range repetitive(5000) {
		b.Run(bm.name, func(b *testing.B) {
			for b.Loop() {
				parser.ParseMarkdownText(bm.input)
			}
		})
	}

	b.Run("corpus", func(b *testing.B) {
		for b.Loop() {
			for _, input := range corpus {
				parser.ParseMarkdownText(input)
			}
		}
	})
}
