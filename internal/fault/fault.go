// Package fault defines the error taxonomy shared by all ifguard stages.
// Every failure is terminal for the invocation; classification only decides
// how the top level describes it.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies an error by the pipeline stage that produced it.
type Kind int

const (
	// Config covers denylist file problems and internally invalid
	// program selections.
	Config Kind = iota + 1
	// Validation covers interface name syntax, denylist membership,
	// and sanitizer rejections.
	Validation
	// Runtime covers dispatch-time failures (target binary absent,
	// exec refused, wrong platform or privileges).
	Runtime
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Config:
		return "configuration error"
	case Validation:
		return "validation error"
	case Runtime:
		return "runtime error"
	default:
		return "unknown error"
	}
}

// Error is a classified error, optionally wrapping an underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Configf returns a Config-kind error.
func Configf(format string, args ...interface{}) error {
	return &Error{Kind: Config, Msg: fmt.Sprintf(format, args...)}
}

// ConfigWrap returns a Config-kind error wrapping err.
func ConfigWrap(err error, format string, args ...interface{}) error {
	return &Error{Kind: Config, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Validationf returns a Validation-kind error.
func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

// Runtimef returns a Runtime-kind error.
func Runtimef(format string, args ...interface{}) error {
	return &Error{Kind: Runtime, Msg: fmt.Sprintf(format, args...)}
}

// RuntimeWrap returns a Runtime-kind error wrapping err.
func RuntimeWrap(err error, format string, args ...interface{}) error {
	return &Error{Kind: Runtime, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of err, or 0 if err carries no classification.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}
