package rop

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Kind classifies a failure carried by a Result.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindValidation: a precondition on the value was not met.
	KindValidation
	// KindConflict: a uniqueness or existence precondition was not met.
	KindConflict
	// KindWrapped: a lower-level failure re-signaled with added context.
	KindWrapped
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindWrapped:
		return "wrapped"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. A wrapped failure also matches the kind of its cause.
var (
	ErrValidation = errors.New("validation failure")
	ErrConflict   = errors.New("conflict failure")
	ErrWrapped    = errors.New("wrapped failure")
)

// Error is a human-readable failure descriptor. For KindWrapped the original
// cause is kept and rendered after the context line.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

func Validation(msg string) error {
	return &Error{kind: KindValidation, msg: msg}
}

func Validationf(format string, args ...any) error {
	return Validation(fmt.Sprintf(format, args...))
}

func Conflict(msg string) error {
	return &Error{kind: KindConflict, msg: msg}
}

func Conflictf(format string, args ...any) error {
	return Conflict(fmt.Sprintf(format, args...))
}

// Wrap prepends context to err. A nil err stays nil.
func Wrap(err error, context string) error {
	if IsNil(err) {
		return nil
	}
	return &Error{kind: KindWrapped, msg: context, cause: err}
}

func Wrapf(err error, format string, args ...any) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.kind == KindValidation
	case ErrConflict:
		return e.kind == KindConflict
	case ErrWrapped:
		return e.kind == KindWrapped
	}
	return false
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Message is the error's own line, without its cause.
func (e *Error) Message() string {
	return e.msg
}

// KindOf reports the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.kind
	}
	return KindUnknown
}

// RecoveryError carries a panic value recovered from a step, with the stack
// captured at the point of recovery.
type RecoveryError struct {
	PanicValue any
	StackTrace string
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("panic recovered: %v", e.PanicValue)
}

// Recovered converts a recover() value into an error, or nil if nothing
// panicked.
func Recovered(r any) error {
	if r == nil {
		return nil
	}
	return &RecoveryError{
		PanicValue: r,
		StackTrace: string(debug.Stack()),
	}
}
