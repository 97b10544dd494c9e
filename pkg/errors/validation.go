package errors

import (
	"strings"
	"unicode"
)

// ValidateVersion validates an ignore-file version token before it is turned
// into a file name. The token becomes part of "ignore-<version>.txt", so
// anything that could escape the sanity directory is rejected.
//
// The validation rules:
//   - No empty tokens
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
func ValidateVersion(version string) error {
	if version == "" {
		return New(ErrCodeInvalidVersion, "version cannot be empty")
	}

	if len(version) > 64 {
		return New(ErrCodeInvalidVersion, "version too long (max 64 characters)")
	}

	for _, r := range version {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidVersion, "version contains invalid characters: %q", version)
		}
	}

	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(version, pattern) {
			return New(ErrCodeInvalidVersion, "version contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateCollectionName validates a namespace or collection name as used in
// the ansible_collections/<namespace>/<name> layout.
func ValidateCollectionName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidMetadata, "collection %s cannot be empty", kind)
	}

	for _, r := range name {
		if !(r == '_' || unicode.IsDigit(r) || (r < unicode.MaxASCII && unicode.IsLetter(r))) {
			return New(ErrCodeInvalidMetadata, "collection %s %q contains invalid character %q", kind, name, r)
		}
	}

	return nil
}
