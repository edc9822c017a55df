/*
File    : littlearn/sink/sink.go
Author  : akashmaji946
*/

// Package sink defines littlearn's external collaborator interfaces: an
// output sink for print(), an error sink for diagnostics, and a radio
// formatter for the embedded-only send_bool() builtin. All three are
// optional from the interpreter's point of view — it runs fine with
// any of them left nil.
package sink

import (
	"fmt"
	"io"
)

// PrintFrame and ErrorFrame are the fixed wire-framing tokens wrapping
// every print() payload and every diagnostic message, respectively. Any
// reader (an embedded firmware's serial console, a REPL, a test harness)
// splits on these to tell interpreter output apart from other noise on
// the same stream.
const (
	PrintFrame = "__P__"
	ErrorFrame = "__ER__"
)

// OutputSink receives the payload of every successful print() call,
// already formatted, without the framing tokens applied.
type OutputSink interface {
	Write(message string)
}

// ErrorSink receives every diagnostic message (parse errors, runtime
// errors) without the framing tokens applied.
type ErrorSink interface {
	WriteError(message string)
}

// RadioFormatter receives the (tileIndex, value) pairs produced by the
// send_bool() builtin. It exists only for the embedded target: running
// littlearn on a desktop leaves it nil, and send_bool() reports a
// runtime error instead of calling it.
type RadioFormatter interface {
	SendBool(tileIndex int, value bool) error
}

// WriterSink is an OutputSink/ErrorSink backed by an io.Writer, applying
// the PrintFrame/ErrorFrame wire framing. This is the default sink used
// by the REPL and file-mode CLI, grounded on the original OutputStream
// abstraction but split into the two interfaces above.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as both an OutputSink and an ErrorSink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write frames message with PrintFrame and writes it to the underlying
// writer, exactly as littlearn's print() builtin is specified.
func (s *WriterSink) Write(message string) {
	fmt.Fprintf(s.w, "%s%s\n%s", PrintFrame, message, PrintFrame)
}

// WriteError frames message with ErrorFrame and writes it to the
// underlying writer.
func (s *WriterSink) WriteError(message string) {
	fmt.Fprintf(s.w, "%s%s\n%s", ErrorFrame, message, ErrorFrame)
}
