package parser

import (
	"slices"
	"strings"
)

// ExtractMentionAddresses returns the addresses of "@local@domain" mentions
// that start the text or follow whitespace, sorted and deduplicated.
func (p *Parser) ExtractMentionAddresses(text string) []string {
	addresses := []string{}

	for i := 0; i < len(text); {
		at := strings.IndexByte(text[i:], '@')
		if at < 0 {
			break
		}
		at += i
		i = at + 1

		if prev := lastRune(text[:at]); prev != noRune && !IsWhiteSpace(prev) {
			continue
		}

		n, err := p.matchEmail(text[at+1:])
		if err != nil {
			continue
		}
		addresses = append(addresses, text[at+1:at+1+n])
		i = at + 1 + n
	}

	slices.Sort(addresses)
	return slices.Compact(addresses)
}

// ExtractMentionAddresses uses the default parser.
func ExtractMentionAddresses(text string) []string {
	return defaultParser.ExtractMentionAddresses(text)
}
