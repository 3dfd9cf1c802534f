package config

import (
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string
}

const yamlTemplate = `# msgparse configuration
# See: https://github.com/yaklabco/msgparse

# Parse mode: text, desktop or markdown
mode: markdown

output:
  # Output format for parse: tree, text, json or yaml
  format: tree
  # Colorized output: auto, always or never
  color: auto

parser:
  # Nested spans deeper than this stay plain text
  max_depth: 64
  # Add language hints for code blocks to parse output
  detect_languages: false

scan:
  # File extensions to scan
  extensions:
    - .txt
    - .md
    - .log
  # Number of parallel workers (0 = auto)
  jobs: 0
  # File patterns to ignore (glob patterns)
  # ignore:
  #   - "archive/**"
  follow_symlinks: false
`

// GenerateTemplate creates a commented configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}
	return []byte(yamlTemplate), nil
}

// templateToJSON renders the defaults as JSON, which has no comments.
func templateToJSON() ([]byte, error) {
	cfg := NewConfig()
	doc := map[string]any{
		"mode": cfg.Mode,
		"output": map[string]any{
			"format": cfg.Output.Format,
			"color":  cfg.Output.Color,
		},
		"parser": map[string]any{
			"max_depth":        cfg.Parser.MaxDepth,
			"detect_languages": cfg.Parser.DetectLanguages,
		},
		"scan": map[string]any{
			"extensions":      cfg.Scan.Extensions,
			"jobs":            cfg.Scan.Jobs,
			"follow_symlinks": cfg.Scan.FollowSymlinks,
		},
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# msgparse configuration
# See: https://github.com/yaklabco/msgparse`
}
