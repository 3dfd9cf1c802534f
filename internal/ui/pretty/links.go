package pretty

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/msgparse/pkg/linkurl"
)

// Link table layout.
const (
	columnGap      = 2
	minTargetWidth = 20
	maxHostWidth   = 32
	schemeWidth    = 8
)

// LinkTable formats link destinations as an aligned table.
type LinkTable struct {
	styles    *Styles
	termWidth int
}

// NewLinkTable creates a link table formatter. A termWidth of 0 means the
// default width.
func NewLinkTable(styles *Styles, termWidth int) *LinkTable {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &LinkTable{styles: styles, termWidth: termWidth}
}

// RenderLinks writes links as a table with TARGET, HOST, SCHEME and
// PUNYCODE columns.
func RenderLinks(w io.Writer, links []linkurl.Destination, styles *Styles, termWidth int) (err error) {
	bw := bufio.NewWriterSize(w, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	_, err = bw.WriteString(NewLinkTable(styles, termWidth).Format(links))
	if err != nil {
		return fmt.Errorf("write links: %w", err)
	}
	return nil
}

type linkColumns struct {
	target, host, scheme int
}

// Format renders the table. An empty slice renders a single dim line.
func (t *LinkTable) Format(links []linkurl.Destination) string {
	if len(links) == 0 {
		return t.styles.Dim.Render("No links found.") + "\n"
	}

	cols := t.columnWidths(links)

	var b strings.Builder
	header := PadRight("TARGET", cols.target) + gap() +
		PadRight("HOST", cols.host) + gap() +
		PadRight("SCHEME", cols.scheme) + gap() +
		"PUNYCODE"
	b.WriteString(t.styles.TableHeader.Render(header))
	b.WriteString("\n")
	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat("-", DisplayWidth(header))))
	b.WriteString("\n")

	for _, link := range links {
		b.WriteString(PadRight(Truncate(link.Target, cols.target), cols.target))
		b.WriteString(gap())
		b.WriteString(PadRight(Truncate(link.Hostname, cols.host), cols.host))
		b.WriteString(gap())
		b.WriteString(PadRight(link.Scheme, cols.scheme))
		b.WriteString(gap())
		if link.Punycode != nil {
			b.WriteString(t.styles.Warning.Render(link.Punycode.ASCIIHostname))
		} else {
			b.WriteString(t.styles.Dim.Render("-"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// columnWidths sizes the columns to their content. The target column gets
// whatever the terminal has left.
func (t *LinkTable) columnWidths(links []linkurl.Destination) linkColumns {
	cols := linkColumns{host: len("HOST"), scheme: len("SCHEME")}
	target := len("TARGET")
	punycode := len("PUNYCODE")

	for _, link := range links {
		target = max(target, DisplayWidth(link.Target))
		cols.host = max(cols.host, DisplayWidth(link.Hostname))
		cols.scheme = max(cols.scheme, DisplayWidth(link.Scheme))
		if link.Punycode != nil {
			punycode = max(punycode, len(link.Punycode.ASCIIHostname))
		}
	}
	cols.host = min(cols.host, maxHostWidth)
	cols.scheme = min(cols.scheme, schemeWidth)

	available := t.termWidth - cols.host - cols.scheme - punycode - 3*columnGap
	cols.target = min(target, max(available, minTargetWidth))
	return cols
}

func gap() string {
	return strings.Repeat(" ", columnGap)
}
