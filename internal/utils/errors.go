package utils

import "fmt"

// Common error wrapping helpers used throughout the codebase to keep
// failure messages consistently phrased.

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, err error) error {
	return fmt.Errorf("failed to parse %s: %w", item, err)
}

// WrapLoadError wraps an error with a "failed to load" message
func WrapLoadError(item string, err error) error {
	return fmt.Errorf("failed to load %s: %w", item, err)
}
