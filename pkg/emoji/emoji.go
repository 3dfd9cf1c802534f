// Package emoji recognizes single emoji at the start of a string.
//
// An emoji is a core codepoint or sequence (flag, keycap, table entry),
// optionally followed by a variation selector and a skin tone modifier,
// optionally joined to further emoji by zero width joiners.
package emoji

import (
	"strings"
	"unicode/utf8"
)

// MaxJoins bounds how many zero width joiner links one composite emoji may
// have. It keeps the matcher linear on long joiner chains.
const MaxJoins = 10

// Match returns the byte length of the emoji at the start of s.
func Match(s string) (int, bool) {
	n := matchWithVariants(s)
	if n == 0 {
		return 0, false
	}

	for range MaxJoins {
		r, size := utf8.DecodeRuneInString(s[n:])
		if r != zeroWidthJoiner {
			break
		}
		next := matchWithVariants(s[n+size:])
		if next == 0 {
			break
		}
		n += size + next
	}

	return n, true
}

// GetFirstEmoji returns the emoji that text starts with, if any.
func GetFirstEmoji(text string) (string, bool) {
	n, ok := Match(text)
	if !ok {
		return "", false
	}
	return text[:n], true
}

// CountEmojisIfOnlyContainsEmoji counts the emoji in text. It reports false
// when text is empty or contains anything besides emoji.
func CountEmojisIfOnlyContainsEmoji(text string) (int, bool) {
	count := 0
	rest := text
	for rest != "" {
		n, ok := Match(rest)
		if !ok {
			return 0, false
		}
		rest = rest[n:]
		count++
	}
	if count == 0 {
		return 0, false
	}
	return count, true
}

// matchWithVariants matches a core emoji plus an optional variation
// selector and an optional skin tone modifier. It returns 0 on no match.
func matchWithVariants(s string) int {
	n := matchCore(s)
	if n == 0 {
		return 0
	}
	if r, size := utf8.DecodeRuneInString(s[n:]); isVariationSelector(r) {
		n += size
	}
	if r, size := utf8.DecodeRuneInString(s[n:]); isSkinTone(r) {
		n += size
	}
	return n
}

func matchCore(s string) int {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || first == utf8.RuneError {
		return 0
	}

	if first == blackFlag {
		if n := matchTagSequence(s, size); n > 0 {
			return n
		}
	}

	if isRegionalIndicator(first) {
		if second, size2 := utf8.DecodeRuneInString(s[size:]); isRegionalIndicator(second) {
			return size + size2
		}
	}

	if IsEmojiRune(first) {
		return size
	}

	if isKeycapBase(first) {
		n := size
		if r, vs := utf8.DecodeRuneInString(s[n:]); r == variationSelector {
			n += vs
		}
		if r, kc := utf8.DecodeRuneInString(s[n:]); r == combiningKeycap {
			return n + kc
		}
	}

	for _, lit := range literals {
		if strings.HasPrefix(s, lit) {
			return len(lit)
		}
	}

	return 0
}

// matchTagSequence matches the tag letters and cancel tag that follow a
// black flag in subdivision flags such as England or Scotland.
func matchTagSequence(s string, start int) int {
	n := start
	letters := 0
	for {
		r, size := utf8.DecodeRuneInString(s[n:])
		if r < tagLatinSmallStart || r > tagLatinSmallEnd {
			break
		}
		n += size
		letters++
	}
	if letters == 0 {
		return 0
	}
	if r, size := utf8.DecodeRuneInString(s[n:]); r == cancelTag {
		return n + size
	}
	return 0
}
