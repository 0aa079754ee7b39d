package domain

import (
	customErrors "file-exchange/errors"
	"strings"
)

// ValidateFilename accepts only a single path element. Anything that could
// resolve outside the storage root is refused rather than rewritten.
func ValidateFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return customErrors.ErrEmptyFilename
	}
	if name == "." || name == ".." {
		return customErrors.ErrUnsafeFilename
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return customErrors.ErrUnsafeFilename
	}
	// Drive letters such as "C:" are absolute on Windows hosts.
	if len(name) >= 2 && name[1] == ':' {
		return customErrors.ErrUnsafeFilename
	}
	return nil
}
