package pretty

import (
	"io"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

const (
	defaultTermWidth = 100
	ellipsis         = "..."
)

// TerminalWidth returns the column count of w if it is a terminal, and a
// default width otherwise.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// DisplayWidth returns the number of terminal cells s occupies.
// Emoji and East Asian wide characters count as two cells.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate shortens s to at most width cells, ending in "..." when cut.
// Grapheme clusters are never split.
func Truncate(s string, width int) string {
	if DisplayWidth(s) <= width {
		return s
	}

	budget := width - len(ellipsis)
	if budget < 0 {
		budget = width
	}

	var b strings.Builder
	used := 0
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
	}

	if budget < width {
		b.WriteString(ellipsis)
	}
	return b.String()
}

// PadRight pads s with spaces to width cells.
// This must be called BEFORE applying ANSI styles.
func PadRight(s string, width int) string {
	if pad := width - DisplayWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
