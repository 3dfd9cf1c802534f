package linkurl

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

//nolint:gochecknoglobals // Read-only lookup table.
var genericTLDs = []string{"chat", "com", "edu", "gov", "mil", "net", "org"}

// countryTLDs is sorted for binary search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var countryTLDs = []string{
	"ac", "ad", "ae", "af", "ag", "ai", "al", "am", "ao", "aq", "ar", "as",
	"at", "au", "aw", "ax", "az", "ba", "bb", "bd", "be", "bf", "bg", "bh",
	"bi", "bj", "bm", "bn", "bo", "br", "bs", "bt", "bw", "by", "bz", "ca",
	"cc", "cd", "cf", "cg", "ch", "ci", "ck", "cl", "cm", "cn", "co", "cr",
	"cu", "cv", "cw", "cx", "cy", "cz", "de", "dj", "dk", "dm", "do", "dz",
	"ec", "ee", "eg", "er", "es", "et", "eu", "fi", "fj", "fk", "fm", "fo",
	"fr", "ga", "gb", "gd", "ge", "gf", "gg", "gh", "gi", "gl", "gm", "gn",
	"gp", "gq", "gr", "gs", "gt", "gu", "gw", "gy", "hk", "hm", "hn", "hr",
	"ht", "hu", "id", "ie", "il", "im", "in", "io", "iq", "ir", "is", "it",
	"je", "jm", "jo", "jp", "ke", "kg", "kh", "ki", "km", "kn", "kp", "kr",
	"kw", "ky", "kz", "la", "lb", "lc", "li", "lk", "lr", "ls", "lt", "lu",
	"lv", "ly", "ma", "mc", "md", "me", "mg", "mh", "mk", "ml", "mm", "mn",
	"mo", "mp", "mq", "mr", "ms", "mt", "mu", "mv", "mw", "mx", "my", "mz",
	"na", "nc", "ne", "nf", "ng", "ni", "nl", "no", "np", "nr", "nu", "nz",
	"om", "pa", "pe", "pf", "pg", "ph", "pk", "pl", "pm", "pn", "pr", "ps",
	"pt", "pw", "py", "qa", "re", "ro", "rs", "ru", "rw", "sa", "sb", "sc",
	"sd", "se", "sg", "sh", "si", "sk", "sl", "sm", "sn", "so", "sr", "ss",
	"st", "su", "sv", "sx", "sy", "sz", "tc", "td", "tf", "tg", "th", "tj",
	"tk", "tl", "tm", "tn", "to", "tr", "tt", "tv", "tw", "tz", "ua", "ug",
	"uk", "us", "uy", "uz", "va", "vc", "ve", "vg", "vi", "vn", "vu", "wf",
	"ws", "ye", "yt", "za", "zm", "zw",
}

// IsAllowedTLD reports whether a bare domain ending in tld is linked
// without a scheme. The comparison ignores case.
func IsAllowedTLD(tld string) bool {
	tld = strings.ToLower(tld)
	if slices.Contains(genericTLDs, tld) {
		return true
	}
	_, found := slices.BinarySearch(countryTLDs, tld)
	return found
}

// hasAllowedTLD checks a scheme-less host. It needs at least two non-empty
// labels of letters, digits and hyphens, must not be an IPv4 address, and
// its last label must be allow-listed.
func hasAllowedTLD(host string) bool {
	dot := strings.LastIndexByte(host, '.')
	if dot <= 0 || IsIPv4(host) {
		return false
	}
	for label := range strings.SplitSeq(host, ".") {
		if label == "" || strings.IndexFunc(label, isNotHostnameChar) >= 0 {
			return false
		}
	}
	return IsAllowedTLD(host[dot+1:])
}

// isNotHostnameChar rejects sub-delimiters and percent signs, which are
// valid in registered names but almost never part of a bare domain.
func isNotHostnameChar(r rune) bool {
	if r < utf8.RuneSelf {
		return !isALPHA(r) && !isDIGIT(r) && r != '-'
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.M, r)
}
