package config

import "fmt"

// OutputFormat specifies how results are printed.
type OutputFormat string

const (
	FormatTree  OutputFormat = "tree"
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatTable OutputFormat = "table"
)

// OutputFormats returns all known output formats.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatTree, FormatText, FormatJSON, FormatYAML, FormatTable}
}

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatTree, FormatText, FormatJSON, FormatYAML, FormatTable:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a format name.
func ParseOutputFormat(name string) (OutputFormat, error) {
	format := OutputFormat(name)
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: tree, text, json, yaml, table", name)
	}
	return format, nil
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}
