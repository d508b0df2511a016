package decode

import (
	"errors"
	"fmt"
)

// InvalidInstructionError is the single error kind produced by this package.
// It names the offending instruction kind and field; there is no partial
// success and no recovery at this layer — the caller decides whether to
// abort the batch or skip the instruction.
type InvalidInstructionError struct {
	// Kind is the instruction kind being decoded. Empty when the failure
	// happens before the name token is known.
	Kind string

	// Field is the structured-value field that violated its contract.
	Field string

	// Message is a human-readable description of the violation.
	Message string
}

// Error implements the error interface.
func (e *InvalidInstructionError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("invalid instruction: %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s instruction: %q: %s", e.Kind, e.Field, e.Message)
}

// IsInvalidInstruction returns true if the error is a decode validation
// failure. Uses errors.As to handle wrapped errors.
func IsInvalidInstruction(err error) bool {
	var ie *InvalidInstructionError
	return errors.As(err, &ie)
}

func invalid(kind, field, message string) *InvalidInstructionError {
	return &InvalidInstructionError{Kind: kind, Field: field, Message: message}
}

func invalidf(kind, field, format string, args ...any) *InvalidInstructionError {
	return &InvalidInstructionError{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}
