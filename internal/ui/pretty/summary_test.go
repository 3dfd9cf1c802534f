package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/msgparse/internal/ui/pretty"
	"github.com/yaklabco/msgparse/pkg/linkurl"
	"github.com/yaklabco/msgparse/pkg/parser"
	"github.com/yaklabco/msgparse/pkg/runner"
)

func warning(original, ascii string) linkurl.PunycodeWarning {
	return linkurl.PunycodeWarning{OriginalHostname: original, ASCIIHostname: ascii}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "nothing discovered",
			stats: runner.Stats{},
			want:  "No files to scan.\n",
		},
		{
			name: "clean",
			stats: runner.Stats{
				FilesDiscovered: 1,
				FilesProcessed:  1,
				Messages:        parser.Stats{Links: make([]linkurl.Destination, 1)},
			},
			want: "1 file scanned, 1 link, no punycode warnings\n",
		},
		{
			name: "warnings and failures",
			stats: runner.Stats{
				FilesDiscovered:   4,
				FilesProcessed:    3,
				FilesErrored:      1,
				FilesWithPunycode: 1,
				Messages: parser.Stats{
					Links:            make([]linkurl.Destination, 5),
					PunycodeWarnings: []linkurl.PunycodeWarning{warning("a", "b"), warning("c", "d")},
				},
			},
			want: "3 files scanned, 5 links, 2 punycode warnings in 1 file, 1 file failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	stats := runner.Stats{
		FilesDiscovered: 3,
		FilesProcessed:  2,
		FilesErrored:    1,
		Messages: parser.Stats{
			Elements: 9,
			Depth:    2,
			ByKind:   map[string]int{"Text": 6, "Link": 3},
			PunycodeWarnings: []linkurl.PunycodeWarning{
				warning("münchen.de", "xn--mnchen-3ya.de"),
				warning("münchen.de", "xn--mnchen-3ya.de"),
			},
		},
	}

	result := styles.RenderSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files scanned:")
	assert.Contains(t, result, "Files failed:")
	assert.Contains(t, result, "Elements:")
	assert.Contains(t, result, "Text:")
	assert.Contains(t, result, "Link:")
	assert.NotContains(t, result, "Bold:")
	assert.Equal(t, 1, countOccurrences(result, "münchen.de (xn--mnchen-3ya.de)"))

	// Kinds appear in declaration order.
	assert.Less(t, indexOf(result, "Text:"), indexOf(result, "Link:"))
}
