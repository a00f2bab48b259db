package utils

import (
	"errors"
	"testing"
)

func TestErrorWrappers(t *testing.T) {
	originalErr := errors.New("original error")

	tests := []struct {
		name     string
		wrapper  func(string, error) error
		item     string
		expected string
	}{
		{
			name:     "WrapParseError",
			wrapper:  WrapParseError,
			item:     "config file implgen.toml",
			expected: "failed to parse config file implgen.toml: original error",
		},
		{
			name:     "WrapLoadError",
			wrapper:  WrapLoadError,
			item:     "stub directory",
			expected: "failed to load stub directory: original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wrapper(tt.item, originalErr)
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if !errors.Is(err, originalErr) {
				t.Error("wrapped error must unwrap to the original")
			}
		})
	}
}
