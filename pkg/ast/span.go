package ast

// Span is a half-open byte range in the parsed input.
type Span struct {
	// Start is the byte index where the span begins (inclusive).
	Start int `json:"start" yaml:"start"`

	// End is the byte index where the span ends (exclusive).
	End int `json:"end" yaml:"end"`
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given offset is within this span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// In returns the text the span covers in input, or "" if the span does
// not fit.
func (s Span) In(input string) string {
	if s.Start < 0 || s.End > len(input) || s.Start > s.End {
		return ""
	}
	return input[s.Start:s.End]
}
