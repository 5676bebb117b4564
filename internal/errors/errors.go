package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an engine error. The spend processor maps every rejection
// onto one of these so callers can tell a normal "go see staff" outcome apart
// from a genuine failure.
type Code string

const (
	// CodeUnknown indicates an unclassified error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller supplied a bad argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"

	// CodeValidation indicates a business-rule violation
	CodeValidation Code = "validation"

	// CodeUnrecognizedTrait indicates the classifier could not place a trait
	// name into any bucket
	CodeUnrecognizedTrait Code = "unrecognized_trait"

	// CodeZeroCost indicates the calculator could not price the request
	CodeZeroCost Code = "zero_cost"

	// CodeInsufficientXP indicates the character cannot afford the purchase
	CodeInsufficientXP Code = "insufficient_xp"

	// CodeRequiresApproval indicates a self-service spend hit a staff-only
	// gate. This is a normal, expected outcome, not an exceptional one.
	CodeRequiresApproval Code = "requires_approval"

	// CodeProcessing indicates an unexpected failure during apply/deduct;
	// nothing has been persisted when this is returned
	CodeProcessing Code = "processing"
)

// Error is an application error with a code and optional metadata.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, preserving the code of an
// already-coded error.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var engErr *Error
	if errors.As(err, &engErr) {
		return &Error{
			Code:    engErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(engErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error overriding its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper constructors for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// UnrecognizedTraitf creates an unrecognized-trait error
func UnrecognizedTraitf(format string, args ...any) *Error {
	return Newf(CodeUnrecognizedTrait, format, args...)
}

// ZeroCostf creates a zero-cost error
func ZeroCostf(format string, args ...any) *Error {
	return Newf(CodeZeroCost, format, args...)
}

// InsufficientXPf creates an insufficient-XP error
func InsufficientXPf(format string, args ...any) *Error {
	return Newf(CodeInsufficientXP, format, args...)
}

// RequiresApproval creates a requires-approval error
func RequiresApproval(message string) *Error {
	return New(CodeRequiresApproval, message)
}

// RequiresApprovalf creates a formatted requires-approval error
func RequiresApprovalf(format string, args ...any) *Error {
	return Newf(CodeRequiresApproval, format, args...)
}

// Processingf creates a processing error
func Processingf(format string, args ...any) *Error {
	return Newf(CodeProcessing, format, args...)
}

// Error checking functions

// Is checks if the error carries a specific code
func Is(err error, code Code) bool {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return Is(err, CodeInternal)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// IsUnrecognizedTrait checks if the error is an unrecognized-trait error
func IsUnrecognizedTrait(err error) bool {
	return Is(err, CodeUnrecognizedTrait)
}

// IsZeroCost checks if the error is a zero-cost error
func IsZeroCost(err error) bool {
	return Is(err, CodeZeroCost)
}

// IsInsufficientXP checks if the error is an insufficient-XP error
func IsInsufficientXP(err error) bool {
	return Is(err, CodeInsufficientXP)
}

// IsRequiresApproval checks if the error is a requires-approval error
func IsRequiresApproval(err error) bool {
	return Is(err, CodeRequiresApproval)
}

// IsProcessing checks if the error is a processing error
func IsProcessing(err error) bool {
	return Is(err, CodeProcessing)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
