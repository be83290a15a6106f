// Package errors provides structured error handling for flow layout hosts.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid scene or layout configuration.
	KindConfig
	// KindPrecondition indicates a violated call-order contract, such as
	// placing children before they were measured.
	KindPrecondition
	// KindRender indicates a failure while drawing or writing layout output.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPrecondition:
		return "precondition"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FlowError represents a structured error raised by the layout core or its tools.
type FlowError struct {
	// Op is the operation that failed (e.g., "flow.Place").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.layout").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler receives errors reported through this package.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FlowError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
