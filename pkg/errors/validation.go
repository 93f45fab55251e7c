package errors

import (
	"sort"
	"strings"
	"unicode"
)

// ValidateImageID validates an image identifier (usually a relative file
// path) for safety and correctness. It rejects identifiers that could be
// used for path traversal when the ID is later resolved against the
// gallery source directory.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - No absolute paths
//   - No path traversal sequences (..)
//   - No backslashes (Windows path injection)
//   - Maximum length of 500 characters
func ValidateImageID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidImage, "image id cannot be empty")
	}

	const maxIDLength = 500
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidImage, "image id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidImage, "image id contains invalid characters")
		}
	}

	if strings.HasPrefix(id, "/") {
		return New(ErrCodeInvalidImage, "image id must be relative (cannot start with /)")
	}

	if strings.Contains(id, "..") {
		return New(ErrCodeInvalidImage, "image id cannot contain path traversal sequences (..)")
	}

	if strings.Contains(id, "\\") {
		return New(ErrCodeInvalidImage, "image id cannot contain backslashes")
	}

	return nil
}

// ValidateOutputFormat checks a render format name against the supported
// set. Formats are matched case-sensitively; the CLI lowercases flag
// input before calling this.
func ValidateOutputFormat(format string, valid map[string]bool) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !valid[format] {
		names := make([]string, 0, len(valid))
		for name := range valid {
			names = append(names, name)
		}
		sort.Strings(names)
		return New(ErrCodeInvalidFormat, "invalid format: %q (supported: %s)", format, strings.Join(names, ", "))
	}
	return nil
}

// ValidateSourceDir validates a gallery source directory argument.
// It ensures the path is non-empty and free of null bytes; existence is
// checked by the scanner, which can report a better error.
func ValidateSourceDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "source directory cannot be empty")
	}
	if strings.ContainsRune(dir, '\x00') {
		return New(ErrCodeInvalidPath, "source directory contains invalid characters")
	}
	return nil
}
