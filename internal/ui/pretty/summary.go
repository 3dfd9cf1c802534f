package pretty

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/msgparse/pkg/ast"
	"github.com/yaklabco/msgparse/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

// FormatSummaryOneLine formats scan statistics as a single line.
// Example: "3 files scanned, 12 links, 1 punycode warning in 1 file".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No files to scan.") + "\n"
	}

	parts := []string{
		fmt.Sprintf("%d %s scanned", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)),
	}

	links := len(stats.Messages.Links)
	parts = append(parts, fmt.Sprintf("%d %s", links, plural(links, "link", "links")))

	if warnings := len(stats.Messages.PunycodeWarnings); warnings > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d punycode %s in %d %s",
			warnings, plural(warnings, "warning", "warnings"),
			stats.FilesWithPunycode, plural(stats.FilesWithPunycode, wordFile, wordFiles))))
	} else {
		parts = append(parts, s.Success.Render("no punycode warnings"))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s failed",
			stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// RenderSummary formats scan statistics as a summary block with element
// counts per kind.
func (s *Styles) RenderSummary(stats runner.Stats) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.SummaryTitle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	row := func(label string, value int) {
		b.WriteString("  " + PadRight(label+":", 22) + s.SummaryValue.Render(strconv.Itoa(value)) + "\n")
	}

	row("Files scanned", stats.FilesProcessed)
	if stats.FilesErrored > 0 {
		b.WriteString("  " + PadRight("Files failed:", 22) + s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}
	row("Elements", stats.Messages.Elements)
	row("Max depth", stats.Messages.Depth)

	b.WriteString("\n")
	for _, kind := range ast.Kinds() {
		if count := stats.Messages.ByKind[kind.String()]; count > 0 {
			b.WriteString("    " + PadRight(kind.String()+":", 20) + s.SummaryValue.Render(strconv.Itoa(count)) + "\n")
		}
	}

	if hosts := punycodeHosts(stats); len(hosts) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + s.Warning.Render("Punycode hostnames:") + "\n")
		for _, host := range hosts {
			b.WriteString("    " + host + "\n")
		}
	}

	return b.String()
}

// punycodeHosts lists each warned hostname once, sorted, as "original (ascii)".
func punycodeHosts(stats runner.Stats) []string {
	seen := make(map[string]struct{})
	var hosts []string
	for _, w := range stats.Messages.PunycodeWarnings {
		entry := w.OriginalHostname + " (" + w.ASCIIHostname + ")"
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		hosts = append(hosts, entry)
	}
	slices.Sort(hosts)
	return hosts
}
