// Package render serializes element trees.
//
// JSON and YAML output use a tagged union: every element becomes an object
// with its kind in "t" and its content in "c". Text-like elements carry a
// string, spans carry a list of child objects, and links carry their
// destination. Linebreaks have no content.
package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/msgparse/pkg/ast"
	"github.com/yaklabco/msgparse/pkg/linkurl"
)

// bufWriterSize is the buffer size for output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Format is an element tree output format.
type Format string

// Output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json", "":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	case "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: json, yaml, text", name)
	}
}

// IsValid returns true if the format is known.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatText:
		return true
	default:
		return false
	}
}

// Options configures rendering.
type Options struct {
	// Compact disables indentation of JSON output.
	Compact bool
}

// Node is the serialized form of an element.
type Node struct {
	Type    string `json:"t" yaml:"t"`
	Content any    `json:"c,omitempty" yaml:"c,omitempty"`
}

// LinkContent is the content of a Link node.
type LinkContent struct {
	Destination linkurl.Destination `json:"destination" yaml:"destination"`
}

// LabeledLinkContent is the content of a LabeledLink node.
type LabeledLinkContent struct {
	Label       []Node              `json:"label" yaml:"label"`
	Destination linkurl.Destination `json:"destination" yaml:"destination"`
}

// CodeBlockContent is the content of a CodeBlock node. Language is nil
// when the fence has none.
type CodeBlockContent struct {
	Language *string `json:"language" yaml:"language"`
	Content  string  `json:"content" yaml:"content"`
}

// Nodes converts elements to their serialized form. The result is never
// nil.
func Nodes(elements []*ast.Element) []Node {
	nodes := make([]Node, 0, len(elements))
	for _, e := range elements {
		nodes = append(nodes, toNode(e))
	}
	return nodes
}

func toNode(e *ast.Element) Node {
	node := Node{Type: e.Kind.String()}

	switch e.Kind {
	case ast.KindLinebreak:
	case ast.KindBold, ast.KindItalics, ast.KindStrikeThrough:
		node.Content = Nodes(e.Children)
	case ast.KindLink:
		node.Content = LinkContent{Destination: destination(e)}
	case ast.KindLabeledLink:
		node.Content = LabeledLinkContent{Label: Nodes(e.Children), Destination: destination(e)}
	case ast.KindCodeBlock:
		block := CodeBlockContent{Content: e.Value}
		if e.Language != "" {
			block.Language = &e.Language
		}
		node.Content = block
	default:
		node.Content = e.Value
	}

	return node
}

func destination(e *ast.Element) linkurl.Destination {
	if e.Destination == nil {
		return linkurl.Destination{Target: e.Value}
	}
	return *e.Destination
}

// Write renders elements to w in the given format.
func Write(w io.Writer, format Format, elements []*ast.Element, opts Options) error {
	switch format {
	case FormatJSON:
		return JSON(w, elements, opts)
	case FormatYAML:
		return YAML(w, elements)
	case FormatText:
		_, err := io.WriteString(w, Text(elements))
		if err != nil {
			return fmt.Errorf("write text: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// JSON writes the tagged-union form of elements followed by a newline.
func JSON(w io.Writer, elements []*ast.Element, opts Options) (err error) {
	bw := bufio.NewWriterSize(w, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	encoder.SetEscapeHTML(false)
	if !opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(Nodes(elements)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// YAML writes the tagged-union form of elements as a YAML sequence.
func YAML(w io.Writer, elements []*ast.Element) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(Nodes(elements)); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close YAML encoder: %w", err)
	}
	return nil
}

// Text returns the message as a reader sees it: delimiters are dropped and
// labeled links show their label.
func Text(elements []*ast.Element) string {
	var sb strings.Builder
	writeText(&sb, elements)
	return sb.String()
}

func writeText(sb *strings.Builder, elements []*ast.Element) {
	for _, e := range elements {
		switch e.Kind {
		case ast.KindBold, ast.KindItalics, ast.KindStrikeThrough, ast.KindLabeledLink:
			writeText(sb, e.Children)
		default:
			sb.WriteString(e.Value)
		}
	}
}
