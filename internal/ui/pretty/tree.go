package pretty

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/msgparse/pkg/ast"
	"github.com/yaklabco/msgparse/pkg/langdetect"
)

const (
	bufWriterSize = 64 * 1024
	treeIndent    = "  "
)

// TreeOptions controls RenderTree.
type TreeOptions struct {
	// Hints adds detected languages to code blocks, keyed by source span.
	Hints map[ast.Span]langdetect.Hint
}

// RenderTree writes elements as an indented tree, one element per line.
//
//	Bold
//	  Text "hello"
//	Link https://delta.chat
func RenderTree(w io.Writer, elements []*ast.Element, styles *Styles, opts TreeOptions) (err error) {
	bw := bufio.NewWriterSize(w, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	depth := 0
	return ast.WalkWithContext(elements,
		func(e *ast.Element) error {
			line := strings.Repeat(treeIndent, depth) + formatNode(e, styles, opts)
			depth++
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return fmt.Errorf("write tree: %w", err)
			}
			return nil
		},
		func(*ast.Element) error {
			depth--
			return nil
		})
}

// formatNode renders a single element without its children.
func formatNode(e *ast.Element, styles *Styles, opts TreeOptions) string {
	badge := styles.Badge(e.Kind).Render(e.Kind.String())

	switch e.Kind {
	case ast.KindLinebreak:
		return badge
	case ast.KindBold, ast.KindItalics, ast.KindStrikeThrough:
		return badge
	case ast.KindLink, ast.KindLabeledLink:
		return badge + " " + formatDestination(e, styles)
	case ast.KindCodeBlock:
		return badge + formatLanguage(e, styles, opts) + " " + styles.Value.Render(strconv.Quote(e.Value))
	default:
		return badge + " " + styles.Value.Render(strconv.Quote(e.Value))
	}
}

func formatDestination(e *ast.Element, styles *Styles) string {
	if e.Destination == nil {
		return styles.Value.Render(e.Value)
	}

	out := styles.Value.Render(e.Destination.Target)
	if pw := e.Destination.Punycode; pw != nil {
		out += " " + styles.Warning.Render("punycode: "+pw.ASCIIHostname)
	}
	return out
}

func formatLanguage(e *ast.Element, styles *Styles, opts TreeOptions) string {
	if hint, ok := opts.Hints[e.Source]; ok && hint.IsKnown() {
		label := hint.Language
		if hint.Token == "" {
			label += ", " + hint.Confidence.String()
		}
		return " " + styles.Dim.Render("("+label+")")
	}
	if e.Language != "" {
		return " " + styles.Dim.Render("("+e.Language+")")
	}
	return ""
}

// HintIndex keys hints by the source span of their code block.
func HintIndex(hints []langdetect.BlockHint) map[ast.Span]langdetect.Hint {
	if len(hints) == 0 {
		return nil
	}
	index := make(map[ast.Span]langdetect.Hint, len(hints))
	for _, h := range hints {
		index[h.Source] = h.Hint
	}
	return index
}
