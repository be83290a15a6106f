package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a FlowError.
func (h *LogHandler) HandleError(err *FlowError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[flow error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		if !err.Timestamp.IsZero() {
			fmt.Fprintf(w, "At: %s\n", err.Timestamp.Format("15:04:05.000"))
		}
	} else {
		fmt.Fprintf(w, "[flow error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[flow panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[flow panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
