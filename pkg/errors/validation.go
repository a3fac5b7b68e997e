package errors

import (
	"strings"
	"unicode"
)

const maxTagLength = 256

// ValidateTagName validates a tag name before it is interpolated into URLs.
//
// Tag names end up in release page links and artifact paths, so the rules
// reject anything that could escape the URL path segment:
//   - No empty names
//   - No control characters or whitespace
//   - No path traversal sequences (.., //) and no backslashes
//   - Maximum length of 256 characters
func ValidateTagName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTag, "tag name cannot be empty")
	}

	if len(name) > maxTagLength {
		return New(ErrCodeInvalidTag, "tag name too long (max %d characters)", maxTagLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidTag, "tag name contains invalid characters")
		}
	}

	for _, pattern := range []string{"..", "//", "\\", "?", "#"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidTag, "tag name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
