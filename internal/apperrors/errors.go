// Package apperrors defines the error taxonomy shared by the tracking engine.
//
// All errors here are deterministic logical errors, never transient faults:
// the engine does not retry and does not log, it surfaces them to the caller.
package apperrors

// Code classifies an engine error.
type Code int

const (
	// CodeDomain: an argument fell outside a function's defined domain,
	// e.g. nCr(n, r) with r > n.
	CodeDomain Code = iota + 1
	// CodeState: the operation is impossible in the current card partition,
	// e.g. observing a card whose remaining count is already zero.
	CodeState
	// CodeInvalidArgument: a caller-supplied value is malformed,
	// e.g. a non-positive draw count.
	CodeInvalidArgument
	// CodeInternal: a tracked invariant no longer holds. This always
	// indicates a logic defect upstream, not a recoverable condition.
	CodeInternal
)

// Error is a coded engine error. Context is attached by wrapping with %w,
// so errors.Is against the predeclared values still matches.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Predeclared errors
var (
	ErrDomain          = &Error{Code: CodeDomain, Message: "argument outside the defined domain"}
	ErrState           = &Error{Code: CodeState, Message: "operation impossible in the current state"}
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrInternal        = &Error{Code: CodeInternal, Message: "internal invariant violated"}
)
