package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrVaultNotFound   = errors.New("vault not found")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrCannotImport    = errors.New("cannot import sermon file")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ImportError represents an import-related failure
type ImportError struct {
	Path   string
	Reason string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("cannot import %s: %s", e.Path, e.Reason)
}

func (e *ImportError) Is(target error) bool {
	return target == ErrCannotImport
}
