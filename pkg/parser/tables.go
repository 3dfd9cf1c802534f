package parser

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/yaklabco/msgparse/pkg/emoji"
)

// hashtagExtra holds hashtag characters outside the identifier classes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var hashtagExtra = rangetable.New(
	'+', '-',
	'\u200c', '\u200d',
	0x1F1E6, 0x1F1E7, 0x1F1E8, 0x1F1E9, 0x1F1EA, 0x1F1EB, 0x1F1EC,
	0x1F1ED, 0x1F1EE, 0x1F1EF, 0x1F1F0, 0x1F1F1, 0x1F1F2, 0x1F1F3,
	0x1F1F4, 0x1F1F5, 0x1F1F6, 0x1F1F7, 0x1F1F8, 0x1F1F9, 0x1F1FA,
	0x1F1FB, 0x1F1FC, 0x1F1FD, 0x1F1FE, 0x1F1FF,
	0x1F3FB, 0x1F3FC, 0x1F3FD, 0x1F3FE, 0x1F3FF,
)

// tagCharacters spell out subdivision flags such as England.
//
//nolint:gochecknoglobals // Read-only lookup table.
var tagCharacters = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0xE0020, Hi: 0xE007F, Stride: 1}},
}

// hashtagTable follows the identifier-continue classes plus emoji.
//
//nolint:gochecknoglobals // Read-only lookup table.
var hashtagTable = rangetable.Merge(
	unicode.L,
	unicode.M,
	unicode.Nd,
	unicode.Nl,
	unicode.Pc,
	emoji.Table,
	hashtagExtra,
	tagCharacters,
)

// punctuationTable is the CommonMark notion of Unicode punctuation:
// general categories P and S.
//
//nolint:gochecknoglobals // Read-only lookup table.
var punctuationTable = rangetable.Merge(unicode.P, unicode.S)

// unicodeSpaceTable is Zs plus the ASCII control whitespace.
//
//nolint:gochecknoglobals // Read-only lookup table.
var unicodeSpaceTable = rangetable.Merge(unicode.Zs, rangetable.New('\t', '\n', '\f', '\r'))

// isHashtagChar reports whether r may follow the "#" of a hashtag. "#"
// and "*" are excluded so that "#1#topic2" is two tags and "*#tag*" can
// still be italics.
func isHashtagChar(r rune) bool {
	if r == '#' || r == '*' {
		return false
	}
	return unicode.Is(hashtagTable, r)
}
