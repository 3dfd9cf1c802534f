// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/msgparse/pkg/ast"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Element kind badges
	Text     lipgloss.Style
	Entity   lipgloss.Style // tags, emails, bot commands
	Link     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Value    lipgloss.Style

	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style

	// Summary styles
	FilePath     lipgloss.Style
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Entity:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Emphasis: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		FilePath:     lipgloss.NewStyle().Bold(true),
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Text:           plain,
		Entity:         plain,
		Link:           plain,
		Code:           plain,
		Emphasis:       plain,
		Value:          plain,
		Error:          plain,
		Warning:        plain,
		Success:        plain,
		Failure:        plain,
		FilePath:       plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// Badge returns the style for an element kind.
func (s *Styles) Badge(kind ast.Kind) lipgloss.Style {
	switch kind {
	case ast.KindTag, ast.KindEmailAddress, ast.KindBotCommandSuggestion:
		return s.Entity
	case ast.KindLink, ast.KindLabeledLink:
		return s.Link
	case ast.KindInlineCode, ast.KindCodeBlock:
		return s.Code
	case ast.KindBold, ast.KindItalics, ast.KindStrikeThrough:
		return s.Emphasis
	default:
		return s.Text
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
