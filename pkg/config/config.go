// Package config defines the msgparse configuration types.
// These types are pure data structures with no dependency on the loader.
package config

// Default values.
const (
	DefaultMode     = "markdown"
	DefaultMaxDepth = 64
)

// DefaultExtensions are the file extensions scanned when none are configured.
//
//nolint:gochecknoglobals // Read-only default.
var DefaultExtensions = []string{".txt", ".md", ".log"}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Format is the output format for parse results.
	Format OutputFormat `mapstructure:"format" yaml:"format"`

	// Color is "auto", "always" or "never".
	Color ColorMode `mapstructure:"color" yaml:"color"`
}

// ParserConfig tunes the message parser.
type ParserConfig struct {
	// MaxDepth limits nested spans (0 means the parser default).
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"`

	// DetectLanguages adds language hints for code blocks to parse output.
	DetectLanguages bool `mapstructure:"detect_languages" yaml:"detect_languages"`
}

// ScanConfig controls batch scanning of message files.
type ScanConfig struct {
	// Extensions lists the file extensions to scan, with leading dot.
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`

	// Jobs is the number of parallel workers (0 means GOMAXPROCS).
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// FollowSymlinks descends into symlinked directories.
	FollowSymlinks bool `mapstructure:"follow_symlinks" yaml:"follow_symlinks"`
}

// Config is the root configuration structure for msgparse.
type Config struct {
	// Mode is the parse mode: "text", "desktop" or "markdown".
	Mode string `mapstructure:"mode" yaml:"mode"`

	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Parser ParserConfig `mapstructure:"parser" yaml:"parser"`
	Scan   ScanConfig   `mapstructure:"scan" yaml:"scan"`

	// CLI-level options (not persisted to config files).

	// FailOnPunycode makes scan exit with a findings code when a link
	// needs a punycode warning.
	FailOnPunycode bool `mapstructure:"-" yaml:"-"`

	// Compact disables indentation of JSON output.
	Compact bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode: DefaultMode,
		Output: OutputConfig{
			Format: FormatTree,
			Color:  ColorAuto,
		},
		Parser: ParserConfig{
			MaxDepth: DefaultMaxDepth,
		},
		Scan: ScanConfig{
			Extensions: append([]string(nil), DefaultExtensions...),
			Jobs:       0, // 0 means use GOMAXPROCS
		},
	}
}
