/*
File    : littlearn/errs/handler.go
Author  : akashmaji946
*/

// Package errs carries littlearn's error-handling ambient concern: a Go
// error return at every fallible call (parser, interpreter), plus
// a small cooperative cancellation latch that lets an embedder stop a
// running program from outside the goroutine that's executing it.
package errs

import (
	"fmt"
	"sync"
)

// Sink receives a formatted diagnostic message. Implementations typically
// wrap the sink.ErrorSink interface so littlearn errors are framed the
// same way as everything else the interpreter writes out.
type Sink interface {
	WriteError(message string)
}

// ErrorHandler couples a cooperative stop latch with an optional output
// sink. It is instance state rather than a package-level global so two
// interpreters (e.g. two REPL server connections) running in the same
// process never share cancellation.
type ErrorHandler struct {
	mu      sync.Mutex
	stopped bool
	sink    Sink
}

// NewErrorHandler creates a handler. sink may be nil, in which case
// Handle only triggers the stop latch and does not write anywhere.
func NewErrorHandler(sink Sink) *ErrorHandler {
	return &ErrorHandler{sink: sink}
}

// Handle records an error: it writes the message to the sink (if any)
// and triggers the stop latch so any in-flight loop checking
// ShouldStop notices on its next iteration.
func (h *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}
	h.TriggerStop()
	if h.sink != nil {
		h.sink.WriteError(err.Error())
	}
}

// Handlef is a convenience wrapper around Handle for callers that build
// their message with fmt.Sprintf.
func (h *ErrorHandler) Handlef(format string, args ...interface{}) {
	h.Handle(fmt.Errorf(format, args...))
}

// TriggerStop sets the stop latch without writing a diagnostic. Used by
// an embedder that wants to cancel a running program for a reason that
// isn't itself an error (e.g. a watchdog timeout).
func (h *ErrorHandler) TriggerStop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopped = true
}

// ShouldStop reports whether the latch has been triggered. The
// interpreter's statement loop and the wait() builtin both poll this
// between units of work so cancellation is visible promptly instead of
// only at the very end of the program.
func (h *ErrorHandler) ShouldStop() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

// Reset clears the stop latch, allowing the same handler (and the
// interpreter it's attached to) to run another program.
func (h *ErrorHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopped = false
}
