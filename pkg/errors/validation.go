package errors

import (
	"strings"
	"unicode"
)

// MaxNameLength bounds type, declaration and alias names.
const MaxNameLength = 128

// ValidateName validates an identifier used for a defined type, a record field
// or a node-type declaration.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of MaxNameLength bytes
//   - No control characters
//   - No whitespace (names are rendered verbatim inside borders)
//   - No brackets (reserved for array type expressions)
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidInput, "name too long (max %d characters)", MaxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name %q contains control characters", name)
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "name %q contains whitespace", name)
		}
	}
	if strings.ContainsAny(name, "[]") {
		return New(ErrCodeInvalidInput, "name %q cannot contain brackets", name)
	}
	return nil
}

// ValidateAlias validates a node display alias.
// Aliases may contain spaces but must stay on a single line.
func ValidateAlias(alias string) error {
	if alias == "" {
		return New(ErrCodeInvalidNode, "alias cannot be empty")
	}
	if len(alias) > MaxNameLength {
		return New(ErrCodeInvalidNode, "alias too long (max %d characters)", MaxNameLength)
	}
	for _, r := range alias {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNode, "alias %q contains control characters", alias)
		}
	}
	return nil
}
