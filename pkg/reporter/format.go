package reporter

import "fmt"

// Format represents a scan report format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a format string, returning an error for unknown formats.
// The other configured output formats fall back: "tree" and "table" to text,
// "yaml" to JSON.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "text", "tree", "table", "":
		return FormatText, nil
	case "json", "yaml":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, json", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	return f == FormatText || f == FormatJSON
}
