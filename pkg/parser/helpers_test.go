package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/msgparse/pkg/ast"
)

// node is an element without source offsets, for comparing trees.
type node struct {
	Kind     ast.Kind
	Value    string
	Language string
	Target   string
	Children []node
}

func simplify(elements []*ast.Element) []node {
	var nodes []node
	for _, e := range elements {
		n := node{Kind: e.Kind, Value: e.Value, Language: e.Language}
		if e.Destination != nil {
			n.Target = e.Destination.Target
		}
		if e.Kind.IsFormatting() || e.Kind == ast.KindLabeledLink {
			n.Value = ""
			n.Children = simplify(e.Children)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func text(value string) node    { return node{Kind: ast.KindText, Value: value} }
func tag(value string) node     { return node{Kind: ast.KindTag, Value: value} }
func email(value string) node   { return node{Kind: ast.KindEmailAddress, Value: value} }
func command(value string) node { return node{Kind: ast.KindBotCommandSuggestion, Value: value} }
func code(value string) node    { return node{Kind: ast.KindInlineCode, Value: value} }
func linebreak() node           { return node{Kind: ast.KindLinebreak, Value: "\n"} }

func link(target string) node {
	return node{Kind: ast.KindLink, Value: target, Target: target}
}

func block(language, content string) node {
	return node{Kind: ast.KindCodeBlock, Value: content, Language: language}
}

func labeled(target string, children ...node) node {
	return node{Kind: ast.KindLabeledLink, Target: target, Children: children}
}

func bold(children ...node) node    { return node{Kind: ast.KindBold, Children: children} }
func italics(children ...node) node { return node{Kind: ast.KindItalics, Children: children} }
func strike(children ...node) node  { return node{Kind: ast.KindStrikeThrough, Children: children} }

type parseCase struct {
	name  string
	input string
	want  []node
}

func runParseCases(t *testing.T, parse func(string) []*ast.Element, tests []parseCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			elements := parse(tt.input)
			assert.Equal(t, tt.want, simplify(elements))
			assertRoundTrip(t, tt.input, elements)
		})
	}
}

// assertRoundTrip checks that top-level spans tile the input and that the
// children of every container tile its inner text.
func assertRoundTrip(t *testing.T, input string, elements []*ast.Element) {
	t.Helper()

	var rebuilt strings.Builder
	pos := 0
	for _, e := range elements {
		require.Equal(t, pos, e.Source.Start, "gap or overlap before %s", e.Kind)
		rebuilt.WriteString(e.Source.In(input))
		pos = e.Source.End
		assertChildrenTile(t, input, e)
	}
	assert.Equal(t, len(input), pos)
	assert.Equal(t, input, rebuilt.String())
}

func assertChildrenTile(t *testing.T, input string, e *ast.Element) {
	t.Helper()

	if len(e.Children) == 0 {
		return
	}

	first, last := e.Children[0], e.Children[len(e.Children)-1]
	require.True(t, e.Source.Contains(first.Source.Start), "%s child starts outside parent", e.Kind)
	assert.Equal(t, e.Value, input[first.Source.Start:last.Source.End])

	pos := first.Source.Start
	for _, child := range e.Children {
		require.Equal(t, pos, child.Source.Start, "gap or overlap inside %s", e.Kind)
		pos = child.Source.End
		assertChildrenTile(t, input, child)
	}
}
