package linkurl

import "unicode"

// ucschar ranges from RFC 3987 section 2.2.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ucschar = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00a0, Hi: 0xd7ff, Stride: 1},
		{Lo: 0xf900, Hi: 0xfdcf, Stride: 1},
		{Lo: 0xfdf0, Hi: 0xffef, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0x1fffd, Stride: 1},
		{Lo: 0x20000, Hi: 0x2fffd, Stride: 1},
		{Lo: 0x30000, Hi: 0x3fffd, Stride: 1},
		{Lo: 0x40000, Hi: 0x4fffd, Stride: 1},
		{Lo: 0x50000, Hi: 0x5fffd, Stride: 1},
		{Lo: 0x60000, Hi: 0x6fffd, Stride: 1},
		{Lo: 0x70000, Hi: 0x7fffd, Stride: 1},
		{Lo: 0x80000, Hi: 0x8fffd, Stride: 1},
		{Lo: 0x90000, Hi: 0x9fffd, Stride: 1},
		{Lo: 0xa0000, Hi: 0xafffd, Stride: 1},
		{Lo: 0xb0000, Hi: 0xbfffd, Stride: 1},
		{Lo: 0xc0000, Hi: 0xcfffd, Stride: 1},
		{Lo: 0xd0000, Hi: 0xdfffd, Stride: 1},
		{Lo: 0xe1000, Hi: 0xefffd, Stride: 1},
	},
}

// iprivate ranges from RFC 3987 section 2.2, allowed in queries only.
//
//nolint:gochecknoglobals // Read-only lookup table.
var iprivate = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0xe000, Hi: 0xf8ff, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0xf0000, Hi: 0xffffd, Stride: 1},
		{Lo: 0x100000, Hi: 0x10fffd, Stride: 1},
	},
}

func isALPHA(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDIGIT(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHEXDIG(r rune) bool {
	return isDIGIT(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isSchemeChar(r rune) bool {
	return isALPHA(r) || isDIGIT(r) || r == '+' || r == '-' || r == '.'
}

func isUnreserved(r rune) bool {
	return isALPHA(r) || isDIGIT(r) || r == '-' || r == '.' || r == '_' || r == '~'
}

func isSubDelim(r rune) bool {
	switch r {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	default:
		return false
	}
}

func isIUnreserved(r rune) bool {
	return isUnreserved(r) || unicode.Is(ucschar, r)
}

func isIRegName(r rune) bool {
	return isIUnreserved(r) || isSubDelim(r)
}

func isIUserinfo(r rune) bool {
	return isIRegName(r) || r == ':'
}

// isIPchar accepts the ipchar set plus square and curly brackets, which
// occur unescaped in real-world paths and are balanced by the trimmer.
func isIPchar(r rune) bool {
	switch r {
	case ':', '@', '[', ']', '{', '}':
		return true
	default:
		return isIRegName(r)
	}
}

func isIQuery(r rune) bool {
	return isIPchar(r) || unicode.Is(iprivate, r) || r == '/' || r == '?'
}

func isIFragment(r rune) bool {
	return isIPchar(r) || r == '/' || r == '?'
}

// IsWhiteSpace reports whether r is one of the ASCII whitespace characters
// that end a generic scheme link.
func IsWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
