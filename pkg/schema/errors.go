package schema

import "fmt"

// Error codes for structured error reporting.
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeExecution     = "EXECUTION_ERROR"
	ErrCodeCycleDetected = "CYCLE_DETECTED"
)

// TreeError is the structured error type for all evaluation failures the
// library itself produces. Predicate and action failures supplied by the
// caller propagate unmodified; expression-backed predicates wrap theirs in
// a TreeError carrying the failing expression.
type TreeError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Node    string         `json:"node,omitempty"`
	Cause   error          `json:"-"`
}

func (e *TreeError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("[%s] node %s: %s", e.Code, e.Node, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *TreeError) Unwrap() error {
	return e.Cause
}

// NewError creates a new TreeError.
func NewError(code, message string) *TreeError {
	return &TreeError{Code: code, Message: message}
}

// NewErrorf creates a new TreeError with a formatted message.
func NewErrorf(code, format string, args ...any) *TreeError {
	return &TreeError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithNode attaches the name of the node being evaluated.
func (e *TreeError) WithNode(node string) *TreeError {
	e.Node = node
	return e
}

// WithCause attaches an underlying cause.
func (e *TreeError) WithCause(err error) *TreeError {
	e.Cause = err
	return e
}

// WithDetails attaches key-value details.
func (e *TreeError) WithDetails(details map[string]any) *TreeError {
	e.Details = details
	return e
}
