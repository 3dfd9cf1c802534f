package linkurl

import (
	"net/netip"
	"strings"
)

// IsIPLiteral reports whether s, the text between the square brackets of
// an IP-literal host, is an IPv6 address or an IPvFuture literal.
func IsIPLiteral(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == 'v' || s[0] == 'V' {
		return isIPvFuture(s[1:])
	}
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6() && addr.Zone() == ""
}

// isIPvFuture checks the part after "v": 1*HEXDIG "." 1*( unreserved /
// sub-delims / ":" ).
func isIPvFuture(s string) bool {
	dot := strings.IndexByte(s, '.')
	if dot <= 0 || dot == len(s)-1 {
		return false
	}
	for _, r := range s[:dot] {
		if !isHEXDIG(r) {
			return false
		}
	}
	for _, r := range s[dot+1:] {
		if !isUnreserved(r) && !isSubDelim(r) && r != ':' {
			return false
		}
	}
	return true
}

// IsIPv4 reports whether host is a dotted-quad IPv4 address with octets in
// 0-255.
func IsIPv4(host string) bool {
	octets := strings.Split(host, ".")
	if len(octets) != 4 {
		return false
	}
	for _, octet := range octets {
		if octet == "" || len(octet) > 3 {
			return false
		}
		value := 0
		for _, r := range octet {
			if !isDIGIT(r) {
				return false
			}
			value = value*10 + int(r-'0')
		}
		if value > 255 {
			return false
		}
	}
	return true
}
