package linkurl

import (
	"strings"

	"golang.org/x/net/idna"
)

const acePrefix = "xn--"

// IsPuny reports whether host contains characters other than ASCII
// letters, digits, dots and hyphens.
func IsPuny(host string) bool {
	for i := range len(host) {
		c := host[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.' || c == '-':
		default:
			return true
		}
	}
	return false
}

// PunycodeEncodeHost converts every label of host that needs it to its
// "xn--" ASCII form. Labels that cannot be encoded are kept as they are.
func PunycodeEncodeHost(host string) string {
	labels := strings.Split(host, ".")
	for i, label := range labels {
		if !IsPuny(label) {
			continue
		}
		ascii, err := idna.Punycode.ToASCII(label)
		if err != nil {
			continue
		}
		labels[i] = ascii
	}
	return strings.Join(labels, ".")
}

// PunycodeDecodeHost converts "xn--" labels of host back to Unicode.
// Labels that fail to decode are kept as they are.
func PunycodeDecodeHost(host string) string {
	labels := strings.Split(host, ".")
	for i, label := range labels {
		if len(label) < len(acePrefix) || !strings.EqualFold(label[:len(acePrefix)], acePrefix) {
			continue
		}
		decoded, err := idna.Punycode.ToUnicode(label)
		if err != nil {
			continue
		}
		labels[i] = decoded
	}
	return strings.Join(labels, ".")
}

// punycodeWarning returns a warning for host if its ASCII form differs from
// the way it is written in target.
func punycodeWarning(target, host string) *PunycodeWarning {
	if host == "" || !IsPuny(host) {
		return nil
	}
	ascii := PunycodeEncodeHost(host)
	if ascii == host {
		return nil
	}
	return &PunycodeWarning{
		OriginalHostname:   host,
		ASCIIHostname:      ascii,
		PunycodeEncodedURL: strings.Replace(target, host, ascii, 1),
	}
}
