package langdetect

import "strings"

// pattern recognizes a language from unmistakable markers.
type pattern struct {
	language string
	matches  func(content, trimmed string) bool
}

// patterns are checked in order of specificity.
//
//nolint:gochecknoglobals // Read-only lookup table.
var patterns = []pattern{
	{"Go", looksLikeGo},
	{"Python", looksLikePython},
	{"HTML", looksLikeHTML},
	{"JSON", looksLikeJSON},
	{"Dockerfile", looksLikeDockerfile},
	{"SQL", looksLikeSQL},
	{"Rust", looksLikeRust},
	{"JavaScript", looksLikeJavaScript},
	{"YAML", looksLikeYAML},
}

func detectByPattern(content string) string {
	trimmed := strings.TrimSpace(content)
	for _, p := range patterns {
		if p.matches(content, trimmed) {
			return p.language
		}
	}
	return ""
}

func looksLikeGo(_, trimmed string) bool {
	return strings.HasPrefix(trimmed, "package ")
}

func looksLikePython(content, trimmed string) bool {
	switch {
	case strings.Contains(content, "def ") && strings.Contains(content, "):"):
		return true
	case strings.Contains(content, "__name__"), strings.Contains(content, "__main__"):
		return true
	case strings.Contains(content, "import (") || !strings.Contains(content, "import "):
		return false
	default:
		return strings.Contains(content, "from ") || strings.HasPrefix(trimmed, "import ")
	}
}

func looksLikeHTML(_, trimmed string) bool {
	lower := strings.ToLower(trimmed)
	for _, marker := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func looksLikeJSON(_, trimmed string) bool {
	return (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) &&
		strings.Contains(trimmed, `"`)
}

func looksLikeDockerfile(content, trimmed string) bool {
	return strings.HasPrefix(trimmed, "FROM ") ||
		(strings.Contains(content, "\nFROM ") && strings.Contains(content, "\nRUN ")) ||
		(strings.Contains(content, "WORKDIR ") && strings.Contains(content, "COPY "))
}

func looksLikeSQL(_, trimmed string) bool {
	upper := strings.ToUpper(trimmed)
	for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, keyword) {
			return true
		}
	}
	return false
}

func looksLikeRust(content, _ string) bool {
	return strings.Contains(content, "fn main()") ||
		strings.Contains(content, "println!") ||
		strings.Contains(content, "let mut ")
}

func looksLikeJavaScript(content, _ string) bool {
	for _, marker := range []string{"=>", "const ", "let ", "console.log"} {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// looksLikeYAML counts "key: value" lines and list items.
func looksLikeYAML(content, _ string) bool {
	entries := 0
	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, ": ") &&
			!strings.ContainsAny(line, "({") &&
			!strings.HasPrefix(line, `"`) {
			entries++
		}
		if strings.HasPrefix(line, "- ") {
			entries++
		}
	}
	return entries >= 2
}
