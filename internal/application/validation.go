package application

import (
	"fmt"
	"strings"

	"sermonvault/internal/domain"
)

// ValidateRequired checks that a string field is non-empty after trimming
// whitespace.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateDate checks that a value is a well-formed calendar date
func ValidateDate(fieldName, value string) error {
	if !domain.ValidDate(value) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be a date in %s form", formatFieldName(fieldName), domain.DateLayout),
		}
	}
	return nil
}

// ValidateSupportedFile checks that a file name carries a supported sermon
// file extension.
func ValidateSupportedFile(fieldName, fileName string) error {
	if !domain.IsSupportedFile(fileName) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, fileName)
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"vaultPath":  "vault path",
		"sourcePath": "source path",
		"title":      "title",
		"date":       "date",
		"field":      "field",
		"value":      "value",
	}
	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
