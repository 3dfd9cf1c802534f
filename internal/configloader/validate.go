package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/msgparse/pkg/config"
	"github.com/yaklabco/msgparse/pkg/parser"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "parser.max_depth").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) addError(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Mode != "" {
		if _, err := parser.ParseMode(cfg.Mode); err != nil {
			result.addError("mode", cfg.Mode, "invalid mode %q; must be one of: text, desktop, markdown", cfg.Mode)
		}
	}

	if cfg.Output.Format != "" && !cfg.Output.Format.IsValid() {
		result.addError("output.format", cfg.Output.Format,
			"invalid format %q; must be one of: tree, text, json, yaml, table", cfg.Output.Format)
	}

	if cfg.Output.Color != "" && !cfg.Output.Color.IsValid() {
		result.addError("output.color", cfg.Output.Color,
			"invalid color mode %q; must be one of: auto, always, never", cfg.Output.Color)
	}

	if cfg.Parser.MaxDepth < 0 {
		result.addError("parser.max_depth", cfg.Parser.MaxDepth, "max_depth must be >= 0 (0 means default)")
	}
	if cfg.Parser.MaxDepth > parser.MaxNestingDepth {
		result.Warnings = append(result.Warnings, ValidationError{
			Field: "parser.max_depth",
			Value: cfg.Parser.MaxDepth,
			Message: fmt.Sprintf("max_depth %d exceeds the parser limit; using %d",
				cfg.Parser.MaxDepth, parser.MaxNestingDepth),
		})
	}

	if cfg.Scan.Jobs < 0 {
		result.addError("scan.jobs", cfg.Scan.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	validateExtensions(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateExtensions checks that scan extensions start with a dot.
func validateExtensions(cfg *config.Config, result *ValidationResult) {
	for i, ext := range cfg.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.addError(fmt.Sprintf("scan.extensions[%d]", i), ext,
				"invalid extension %q; must start with a dot", ext)
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Scan.Ignore {
		// filepath.Match returns an error only for malformed patterns
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.addError(fmt.Sprintf("scan.ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
