package output

// StructuredError is an error with machine-readable metadata, printed by the CLI in the
// selected output format.
type StructuredError struct {
	// Code is a machine-readable error identifier (e.g., "CONFIG_INVALID")
	Code string `json:"code" yaml:"code"`

	// Message is a human-readable error description
	Message string `json:"message" yaml:"message"`

	// Guidance explains how to fix the problem
	Guidance string `json:"guidance,omitempty" yaml:"guidance,omitempty"`

	// Context contains additional structured data about the error
	Context map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty"`
}

// Error implements the error interface for StructuredError.
func (e StructuredError) Error() string {
	return e.Message
}

// Error codes used by the sing-config commands
const (
	ErrCodeConfigInvalid       = "CONFIG_INVALID"
	ErrCodeInvalidOutputFormat = "INVALID_OUTPUT_FORMAT"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeBuildFailed         = "BUILD_FAILED"
	ErrCodeOperationFailed     = "OPERATION_FAILED"
)

// NewStructuredError creates a new StructuredError with the given code and message.
func NewStructuredError(code, message string) StructuredError {
	return StructuredError{
		Code:    code,
		Message: message,
	}
}

// WithGuidance adds guidance to the error.
func (e StructuredError) WithGuidance(guidance string) StructuredError {
	e.Guidance = guidance
	return e
}

// WithContext adds context data to the error.
func (e StructuredError) WithContext(key string, value interface{}) StructuredError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// FromError converts a standard error to a StructuredError.
func FromError(err error, code string) StructuredError {
	if se, ok := err.(StructuredError); ok {
		return se
	}
	return StructuredError{
		Code:    code,
		Message: err.Error(),
	}
}
