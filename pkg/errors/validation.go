package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxTextLength bounds titles and single-line labels in a catalog.
const maxTextLength = 256

// ValidateText validates a short, single-line label such as a page title,
// quiz option or object name. field names the value in the error message.
func ValidateText(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return New(ErrCodeInvalidContent, "%s cannot be empty", field)
	}

	if len(s) > maxTextLength {
		return New(ErrCodeInvalidContent, "%s too long (max %d characters)", field, maxTextLength)
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidContent, "%s contains invalid control characters", field)
		}
	}

	return nil
}

// ValidateAssetPath validates an image asset path referenced by a catalog.
// Assets are relative to the book directory and must not escape it.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateAssetPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "asset path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "asset path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "asset path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "asset path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "asset path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "asset path cannot contain backslashes")
	}

	return nil
}

// hexColorRegex matches #RGB, #RRGGBB and #RRGGBBAA colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateHexColor validates a pen color given as a CSS-style hex string.
func ValidateHexColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid color %q (want #RGB, #RRGGBB or #RRGGBBAA)", color)
	}
	return nil
}
