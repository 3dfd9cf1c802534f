package linkurl

import (
	"strings"
	"unicode/utf8"
)

// maxHostLength is the longest domain name DNS can carry.
const maxHostLength = 253

func parseIRI(input string) (Destination, bool) {
	pos := 0
	scheme := ""
	if n := scanScheme(input); n > 0 && strings.HasPrefix(input[n:], "://") {
		scheme = input[:n]
		pos = n + len("://")
	}

	var (
		hostStart, hostEnd int
		literal, ok        bool
	)
	if scheme == "" {
		hostEnd, ok = scanBareHost(input)
		if !ok {
			return Destination{}, false
		}
	} else {
		if end := scanRun(input, pos, isIUserinfo, true); end > pos && end < len(input) && input[end] == '@' {
			pos = end + 1
		}
		hostStart = pos
		hostEnd, literal, ok = scanHost(input, pos)
		if !ok {
			return Destination{}, false
		}
	}
	pos = hostEnd

	if pos < len(input) && input[pos] == ':' {
		pos++
		for pos < len(input) && isDIGIT(rune(input[pos])) {
			pos++
		}
	}

	pathStart := pos
	for pos < len(input) && input[pos] == '/' {
		pos = scanRun(input, pos+1, isIPchar, true)
	}
	if hostEnd == hostStart && pos == pathStart {
		return Destination{}, false
	}
	if pos < len(input) && input[pos] == '?' {
		pos = scanRun(input, pos+1, isIQuery, true)
	}
	if pos < len(input) && input[pos] == '#' {
		pos = scanRun(input, pos+1, isIFragment, true)
	}

	// A cut inside the userinfo leaves no host to link to.
	end := trimBoundary(input[:pos])
	if end <= hostStart {
		return Destination{}, false
	}
	hostEnd = min(hostEnd, end)
	host := input[hostStart:hostEnd]

	if scheme == "" && !hasAllowedTLD(host) {
		return Destination{}, false
	}

	dest := Destination{
		Target:   input[:end],
		Hostname: host,
		Scheme:   scheme,
	}
	if !literal {
		dest.Punycode = punycodeWarning(dest.Target, host)
	}
	return dest, true
}

// scanBareHost scans the host of a link without a scheme. It rejects the
// candidate as soon as the host cannot be a domain with an allow-listed
// top level domain, so that a run of punctuation fails on its first rune.
func scanBareHost(s string) (int, bool) {
	if r, _ := utf8.DecodeRuneInString(s); r == utf8.RuneError || isNotHostnameChar(r) {
		return 0, false
	}

	end := scanRun(s[:min(len(s), maxHostLength)], 0, isBareHostChar, false)
	next, _ := utf8.DecodeRuneInString(s[end:])
	switch {
	case end < len(s) && isBareHostChar(next):
		// longer than maxHostLength
		return 0, false
	case next == '@':
		// user@host without a scheme is an email address, not a link.
		return 0, false
	case !hasAllowedTLD(strings.TrimRight(s[:end], ".")):
		return 0, false
	}
	return end, true
}

func isBareHostChar(r rune) bool {
	return r == '.' || !isNotHostnameChar(r)
}

// scanScheme returns the length of the scheme at the start of s, or 0.
func scanScheme(s string) int {
	if s == "" || !isALPHA(rune(s[0])) {
		return 0
	}
	n := 1
	for n < len(s) && isSchemeChar(rune(s[n])) {
		n++
	}
	return n
}

// scanHost scans an IP literal in square brackets or a registered name.
// It fails only for a malformed IP literal.
func scanHost(s string, pos int) (int, bool, bool) {
	if pos < len(s) && s[pos] == '[' {
		closing := strings.IndexByte(s[pos:], ']')
		if closing < 0 || !IsIPLiteral(s[pos+1:pos+closing]) {
			return pos, false, false
		}
		return pos + closing + 1, true, true
	}
	return scanRun(s, pos, isIRegName, true), false, true
}

// scanRun advances from pos over runes accepted by allowed and, when pct
// is set, over percent-encoded octets. It returns the end position.
func scanRun(s string, pos int, allowed func(rune) bool, pct bool) int {
	for pos < len(s) {
		if pct && s[pos] == '%' {
			if pos+2 < len(s) && isHEXDIG(rune(s[pos+1])) && isHEXDIG(rune(s[pos+2])) {
				pos += 3
				continue
			}
			return pos
		}
		r, size := utf8.DecodeRuneInString(s[pos:])
		if r == utf8.RuneError && size <= 1 {
			return pos
		}
		if !allowed(r) {
			return pos
		}
		pos += size
	}
	return pos
}

func isTrailingPunctuation(b byte) bool {
	switch b {
	case ':', ';', '.', ',', '!':
		return true
	default:
		return false
	}
}

const (
	openers = "({[<"
	closers = ")}]>"
)

// trimBoundary returns the length link keeps after dropping one trailing
// punctuation character and cutting at the first unbalanced bracket.
func trimBoundary(link string) int {
	end := len(link)
	if end > 0 && isTrailingPunctuation(link[end-1]) {
		end--
	}
	if cut, ok := unbalancedBracket(link[:end]); ok {
		end = cut
	}
	return end
}

// unbalancedBracket finds the first closer without an opener and the first
// opener that is never closed later on.
func unbalancedBracket(link string) (int, bool) {
	var depth, lastClose [len(closers)]int
	for k := range len(closers) {
		lastClose[k] = strings.LastIndexByte(link, closers[k])
	}

	for i := range len(link) {
		if k := strings.IndexByte(openers, link[i]); k >= 0 {
			depth[k]++
			if lastClose[k] < i {
				return i, true
			}
			continue
		}
		if k := strings.IndexByte(closers, link[i]); k >= 0 {
			if depth[k] == 0 {
				return i, true
			}
			depth[k]--
		}
	}
	return 0, false
}
