package parser_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/msgparse/pkg/parser"
)

func TestDirectDelimited(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		tag         string
		wantContent string
		wantRest    string
		wantErr     error
	}{
		{name: "bold", input: "**bold** rest", tag: "**", wantContent: "bold", wantRest: " rest"},
		{name: "first closer wins", input: "_a_b_", tag: "_", wantContent: "a", wantRest: "b_"},
		{name: "inner spaces", input: "~~a b~~", tag: "~~", wantContent: "a b"},
		{name: "unterminated", input: "**bold", tag: "**", wantErr: parser.ErrNoElement},
		{name: "no opener", input: "x**", tag: "**", wantErr: parser.ErrNoElement},
		{name: "empty input", input: "", tag: "_", wantErr: parser.ErrNoElement},
		{name: "empty content", input: "****", tag: "**", wantErr: parser.ErrNoContent},
		{name: "leading space", input: "** bold**", tag: "**", wantErr: parser.ErrInvalidWhiteSpaceFound},
		{name: "trailing newline", input: "*bold\n*", tag: "*", wantErr: parser.ErrInvalidWhiteSpaceFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, rest, err := parser.DirectDelimited(tt.input, tt.tag)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.input, rest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, content)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestCharacterClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r                  rune
		whiteSpace         bool
		whiteSpaceNoBreak  bool
		unicodeWhiteSpace  bool
		unicodePunctuation bool
	}{
		{r: ' ', whiteSpace: true, whiteSpaceNoBreak: true, unicodeWhiteSpace: true},
		{r: '\t', whiteSpace: true, whiteSpaceNoBreak: true, unicodeWhiteSpace: true},
		{r: '\n', whiteSpace: true, unicodeWhiteSpace: true},
		{r: '\r', whiteSpace: true, unicodeWhiteSpace: true},
		{r: '\u00a0', unicodeWhiteSpace: true},
		{r: '\u3000', unicodeWhiteSpace: true},
		{r: '!', unicodePunctuation: true},
		{r: '_', unicodePunctuation: true},
		{r: '€', unicodePunctuation: true},
		{r: '«', unicodePunctuation: true},
		{r: 'a'},
		{r: '7'},
		{r: 'ü'},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%U", tt.r), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.whiteSpace, parser.IsWhiteSpace(tt.r))
			assert.Equal(t, tt.whiteSpaceNoBreak, parser.IsWhiteSpaceButNotLinebreak(tt.r))
			assert.Equal(t, tt.unicodeWhiteSpace, parser.IsUnicodeWhiteSpace(tt.r))
			assert.Equal(t, tt.unicodePunctuation, parser.IsUnicodePunctuation(tt.r))
		})
	}
}
