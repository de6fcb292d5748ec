package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	// KindInputFormat: a user-entered text field cannot be parsed as required.
	KindInputFormat ErrorKind = "input_format"
	// KindStructural: mismatched lengths or violated relationships between fields.
	KindStructural ErrorKind = "structural"
	// KindCompleteness: required top-level fields absent at export time.
	KindCompleteness ErrorKind = "completeness"
	// KindImportSchema: an external document is missing or malforms a required key.
	KindImportSchema ErrorKind = "import_schema"
	// KindIO: file system and dialog failures outside the form pipeline.
	KindIO ErrorKind = "io"
)

// ValidationError carries one of the form-level error messages. The message is
// surfaced verbatim next to the form section that produced it, so Error()
// returns it unchanged.
type ValidationError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Msg
}

func newValidationError(kind ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// InputFormatError builds a KindInputFormat validation error.
func InputFormatError(format string, args ...any) error {
	return newValidationError(KindInputFormat, format, args...)
}

// StructuralError builds a KindStructural validation error.
func StructuralError(format string, args ...any) error {
	return newValidationError(KindStructural, format, args...)
}

// CompletenessError builds a KindCompleteness validation error.
func CompletenessError(format string, args ...any) error {
	return newValidationError(KindCompleteness, format, args...)
}

// ImportSchemaError builds a KindImportSchema validation error.
func ImportSchemaError(format string, args ...any) error {
	return newValidationError(KindImportSchema, format, args...)
}

// OpError wraps an underlying error with operation context and a kind. It is
// used by infra packages (state store, settings, file IO); form validation
// uses ValidationError so messages reach the user unprefixed.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind == kind
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
