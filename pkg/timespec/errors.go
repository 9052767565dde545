package timespec

import "fmt"

// ErrorCode classifies a failed parse or resolution attempt. All failures
// are terminal for the current attempt; nothing is retried.
type ErrorCode int

const (
	// ErrInvalidFormat indicates structural, length, or character
	// validation failed. No OS call was attempted.
	ErrInvalidFormat ErrorCode = iota + 1

	// ErrTimeResolution indicates calendar-to-epoch conversion rejected
	// the value.
	ErrTimeResolution

	// ErrNumericConversion indicates the fractional-second literal failed
	// to parse as a number.
	ErrNumericConversion

	// ErrReferenceFile indicates the reference file metadata lookup failed.
	ErrReferenceFile

	// ErrEnvironment indicates the timezone-context mutation failed.
	ErrEnvironment
)

// String returns a human-readable name for the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrInvalidFormat:
		return "InvalidFormat"
	case ErrTimeResolution:
		return "TimeResolution"
	case ErrNumericConversion:
		return "NumericConversion"
	case ErrReferenceFile:
		return "ReferenceFile"
	case ErrEnvironment:
		return "Environment"
	default:
		return "Unknown"
	}
}

// ParseError is a typed failure produced by the resolvers.
type ParseError struct {
	Code    ErrorCode
	Message string
	Input   string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (input: %q)", e.Code, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewInvalidFormatError creates an InvalidFormat error.
func NewInvalidFormatError(message, input string) *ParseError {
	return &ParseError{
		Code:    ErrInvalidFormat,
		Message: message,
		Input:   input,
	}
}

// NewTimeResolutionError creates a TimeResolution error.
func NewTimeResolutionError(input string, err error) *ParseError {
	return &ParseError{
		Code:    ErrTimeResolution,
		Message: "cannot resolve calendar time to epoch seconds",
		Input:   input,
		Err:     err,
	}
}

// NewNumericConversionError creates a NumericConversion error.
func NewNumericConversionError(input string, err error) *ParseError {
	return &ParseError{
		Code:    ErrNumericConversion,
		Message: "cannot parse fractional seconds",
		Input:   input,
		Err:     err,
	}
}

// NewReferenceFileError creates a ReferenceFile error.
func NewReferenceFileError(path string, err error) *ParseError {
	return &ParseError{
		Code:    ErrReferenceFile,
		Message: "cannot read reference file timestamps",
		Input:   path,
		Err:     err,
	}
}

// NewEnvironmentError creates an Environment error.
func NewEnvironmentError(err error) *ParseError {
	return &ParseError{
		Code:    ErrEnvironment,
		Message: "cannot set timezone context",
		Err:     err,
	}
}
