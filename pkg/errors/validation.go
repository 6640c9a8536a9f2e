package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxIDLength bounds node and cluster identifiers.
const maxIDLength = 256

// ValidateID validates a node or cluster identifier.
//
// Identifiers end up quoted inside Graphviz DOT source, so the rules only
// exclude what cannot be represented there:
//   - No empty identifiers
//   - No control characters (including newlines and null bytes)
//   - No backslash at the end or before another backslash or a quote,
//     since Graphviz reads those back differently
//   - Maximum length of 256 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "identifier cannot be empty")
	}

	if utf8.RuneCountInString(id) > maxIDLength {
		return &Error{
			Code:    ErrCodeInvalidInput,
			Message: "identifier too long (max 256 characters)",
			ID:      id,
		}
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return &Error{
				Code:    ErrCodeInvalidInput,
				Message: "identifier contains invalid control characters",
				ID:      id,
			}
		}
	}

	if strings.HasSuffix(id, `\`) || strings.Contains(id, `\\`) || strings.Contains(id, `\"`) {
		return &Error{
			Code:    ErrCodeInvalidInput,
			Message: `identifier cannot end with a backslash or contain \\ or \"`,
			ID:      id,
		}
	}

	return nil
}

// ValidateOutputPath validates a render destination path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory: %q", path)
	}

	return nil
}
