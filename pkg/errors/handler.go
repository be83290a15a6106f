package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// DefaultHandler receives everything passed to Report and ReportPanic.
// Replace it with SetHandler; direct assignment is not synchronized.
var DefaultHandler ErrorHandler = &LogHandler{}

var handlerMu sync.RWMutex

// SetHandler installs h as the process-wide handler. A nil h restores a
// terse LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report stamps err with the current time if it has none and hands it to
// the installed handler. Nil errors are ignored.
func Report(err *FlowError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress and stops it. It must be deferred
// directly:
//
//	defer errors.Recover("cmd.layout")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanicError(op, r))
	}
}

// RecoverWithCallback is Recover followed by fn(r), so the caller can turn
// the panic into a return value.
func RecoverWithCallback(op string, fn func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(newPanicError(op, r))
	if fn != nil {
		fn(r)
	}
}

func newPanicError(op string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: stackFrom(4),
		Timestamp:  time.Now(),
	}
}

// CaptureStack formats the stack of its caller's caller, one frame per
// function with its file and line on the next line.
func CaptureStack() string {
	return stackFrom(3)
}

func stackFrom(skip int) string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(skip, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return b.String()
}
