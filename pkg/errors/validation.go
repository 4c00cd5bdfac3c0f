package errors

import (
	"strings"
	"unicode"
)

// ValidateLength validates a grid track count. Zero or negative lengths
// would produce an empty grid template.
func ValidateLength(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidInput, "grid length must be positive, got %d", n)
	}
	return nil
}

// ValidateInterval validates a slider auto-advance interval in milliseconds.
func ValidateInterval(ms int) error {
	if ms <= 0 {
		return New(ErrCodeInvalidInput, "slider interval must be positive, got %dms", ms)
	}
	return nil
}

// ValidateLabels checks that a slider has at least one frame and exactly one
// label per frame.
func ValidateLabels(labels []string, frames int) error {
	if frames == 0 {
		return New(ErrCodeInvalidInput, "slider needs at least one frame")
	}
	if len(labels) != frames {
		return New(ErrCodeInvalidInput, "slider has %d frames but %d labels", frames, len(labels))
	}
	return nil
}

// ValidateFlow validates a layout direction. Only "row" and "column" are
// meaningful to flexbox and grid auto-flow.
func ValidateFlow(flow string) error {
	switch flow {
	case "row", "column":
		return nil
	case "":
		return New(ErrCodeInvalidFlow, "flow cannot be empty")
	default:
		return New(ErrCodeInvalidFlow, "invalid flow %q (want row or column)", flow)
	}
}

// ValidatePath validates an image path referenced from a manifest.
// It prevents path traversal outside the manifest directory.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
