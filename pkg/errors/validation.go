package errors

import (
	"strings"
	"unicode"
)

// ValidateFilename validates a client-supplied document filename before
// it is used for kind detection. It ensures the filename is a simple
// basename without path components.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidFilename, "filename cannot be empty")
	}

	if len(filename) > 256 {
		return New(ErrCodeInvalidFilename, "filename too long (max 256 characters)")
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFilename, "filename contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(filename, pattern) {
			return New(ErrCodeInvalidFilename, "filename contains invalid characters: %q", pattern)
		}
	}

	return nil
}
