// Package linkurl recognizes links in chat text.
//
// Two grammars are supported. Generic links are an allow-listed scheme, a
// colon, and a run of non-whitespace (mailto:, geo:, bitcoin:, ...). IRI
// links follow RFC 3987: an optional scheme with "://", an authority, and
// optional path, query and fragment. IRIs without a scheme are only
// accepted when the host ends in an allow-listed top level domain.
//
// Every recognized link is trimmed at its boundary so that trailing
// sentence punctuation and unbalanced brackets stay outside of it, and
// registered names with non-ASCII characters get a PunycodeWarning.
package linkurl

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidLink reports that the input does not start with a link.
var ErrInvalidLink = errors.New("invalid link")

// Destination describes where a link points.
type Destination struct {
	// Target is the link exactly as written. It is a prefix of the parsed
	// input.
	Target string `json:"target" yaml:"target"`

	// Hostname is the host part of Target. Empty for generic scheme links.
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`

	// Scheme is empty for bare domains like "delta.chat".
	Scheme string `json:"scheme,omitempty" yaml:"scheme,omitempty"`

	// Punycode is set when Hostname needs punycode encoding to be shown
	// unambiguously.
	Punycode *PunycodeWarning `json:"punycode,omitempty" yaml:"punycode,omitempty"`
}

// HasHostname reports whether the destination has a host.
func (d Destination) HasHostname() bool {
	return d.Hostname != ""
}

// IsGeneric reports whether the destination uses the scheme ":" form
// without an authority.
func (d Destination) IsGeneric() bool {
	return d.Scheme != "" && !strings.HasPrefix(d.Target[len(d.Scheme):], "://")
}

// PunycodeWarning carries the ASCII form of an internationalized hostname.
type PunycodeWarning struct {
	OriginalHostname   string `json:"original_hostname" yaml:"original_hostname"`
	ASCIIHostname      string `json:"ascii_hostname" yaml:"ascii_hostname"`
	PunycodeEncodedURL string `json:"punycode_encoded_url" yaml:"punycode_encoded_url"`
}

// MaxLinkLength bounds the bytes Parse examines. A longer link is cut at
// the last rune boundary within the bound.
const MaxLinkLength = 2048

// Parse recognizes the link at the start of input. It returns the
// destination and the unconsumed rest of input.
func Parse(input string) (Destination, string, error) {
	candidate := truncate(input, MaxLinkLength)
	if dest, ok := parseGeneric(candidate); ok {
		return dest, input[len(dest.Target):], nil
	}
	if dest, ok := parseIRI(candidate); ok {
		return dest, input[len(dest.Target):], nil
	}
	return Destination{}, input, ErrInvalidLink
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ParseLabelled is Parse for links with an explicit end, such as the
// destination of [label](url) or the content of <url>. A trailing
// punctuation character that Parse would leave outside the link is
// taken back in.
func ParseLabelled(input string) (Destination, string, error) {
	dest, rest, err := Parse(input)
	if err != nil {
		return dest, rest, err
	}

	if rest != "" && isTrailingPunctuation(rest[0]) {
		dest.Target = input[:len(dest.Target)+1]
		if dest.Punycode != nil {
			dest.Punycode = punycodeWarning(dest.Target, dest.Hostname)
		}
		rest = rest[1:]
	}

	return dest, rest, nil
}

//nolint:gochecknoglobals // Read-only lookup table.
var genericSchemes = map[string]struct{}{
	"mailto":      {},
	"news":        {},
	"feed":        {},
	"tel":         {},
	"sms":         {},
	"geo":         {},
	"maps":        {},
	"bitcoin":     {},
	"bitcoincash": {},
	"eth":         {},
	"ethereum":    {},
	"magnet":      {},
}

// IsAllowedGenericScheme reports whether scheme may be linked without
// "://".
func IsAllowedGenericScheme(scheme string) bool {
	_, ok := genericSchemes[strings.ToLower(scheme)]
	return ok
}

func parseGeneric(input string) (Destination, bool) {
	n := scanScheme(input)
	if n == 0 || n >= len(input) || input[n] != ':' {
		return Destination{}, false
	}
	if !IsAllowedGenericScheme(input[:n]) {
		return Destination{}, false
	}

	end := len(input)
	if i := strings.IndexFunc(input[n+1:], IsWhiteSpace); i >= 0 {
		end = n + 1 + i
	}

	end = trimBoundary(input[:end])
	if end <= n+1 {
		return Destination{}, false
	}

	return Destination{
		Target: input[:end],
		Scheme: input[:n],
	}, true
}
