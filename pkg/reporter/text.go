package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/msgparse/internal/ui/pretty"
	"github.com/yaklabco/msgparse/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Each file gets one line; punycode warnings
// are listed below the file they occur in.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(runner.Stats{}))
		}
		return 0, nil
	}

	var warnings int
	for _, file := range result.Files {
		warnings += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		if r.opts.Verbose {
			fmt.Fprint(r.bw, r.styles.RenderSummary(result.Stats))
			fmt.Fprintln(r.bw)
		}
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return warnings, nil
}

// reportFile writes the lines for one file and returns its warning count.
func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := r.styles.FilePath.Render(displayPath(file.Path, r.opts.WorkingDir))

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
		return 0
	}

	stats := file.Stats
	fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Dim.Render(fmt.Sprintf(
		"%d elements, %d links, %d hashtags, %d emails",
		stats.Elements, len(stats.Links), len(stats.Hashtags), len(stats.Emails))))

	for _, w := range stats.PunycodeWarnings {
		fmt.Fprintf(r.bw, "  %s %s -> %s\n",
			r.styles.Warning.Render("punycode:"), w.OriginalHostname, w.ASCIIHostname)
	}

	if r.opts.Verbose {
		r.writeList("hashtags", stats.Hashtags)
		r.writeList("emails", stats.Emails)
		r.writeList("commands", stats.BotCommands)
		targets := make([]string, 0, len(stats.Links))
		for _, link := range stats.Links {
			targets = append(targets, link.Target)
		}
		r.writeList("links", targets)
	}

	return len(stats.PunycodeWarnings)
}

func (r *TextReporter) writeList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(r.bw, "  %s %s\n", r.styles.Dim.Render(label+":"), strings.Join(items, ", "))
}
