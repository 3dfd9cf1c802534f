package configloader

import "github.com/yaklabco/msgparse/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Booleans: only true in override is visible, so a layer cannot unset them
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Mode != "" {
		result.Mode = override.Mode
	}

	if override.Output.Format != "" {
		result.Output.Format = override.Output.Format
	}
	if override.Output.Color != "" {
		result.Output.Color = override.Output.Color
	}

	if override.Parser.MaxDepth != 0 {
		result.Parser.MaxDepth = override.Parser.MaxDepth
	}
	if override.Parser.DetectLanguages {
		result.Parser.DetectLanguages = true
	}

	if override.Scan.Extensions != nil {
		result.Scan.Extensions = override.Scan.Extensions
	}
	if override.Scan.Jobs != 0 {
		result.Scan.Jobs = override.Scan.Jobs
	}
	if override.Scan.Ignore != nil {
		result.Scan.Ignore = override.Scan.Ignore
	}
	if override.Scan.FollowSymlinks {
		result.Scan.FollowSymlinks = true
	}

	if override.FailOnPunycode {
		result.FailOnPunycode = true
	}
	if override.Compact {
		result.Compact = true
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
