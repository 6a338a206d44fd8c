// Package diagnostics reports compile-time and runtime errors in the
// interpreter's wire format: `[line <n>] Error<where>: <message>` to
// stderr, where <where> is "", " at end", or " at '<lexeme>'".
package diagnostics

import (
	"fmt"
	"io"
)

// Error is a single reported diagnostic.
type Error struct {
	Line    int
	Where   string // "", " at end", or " at '<lexeme>'"
	Message string
}

// Format renders the error in the single-line diagnostic shape.
func (e *Error) Format() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// Reporter accumulates diagnostics across a single pipeline run (scan,
// parse, resolve) and tracks the two sticky "had an error" flags that
// decide the exit code. The REPL calls Reset between lines so one bad line
// doesn't poison the next — see cmd/golox/cmd for the REPL loop.
type Reporter struct {
	Out             io.Writer
	errors          []*Error
	hadError        bool
	hadRuntimeError bool
}

// NewReporter creates a Reporter writing formatted diagnostics to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Report records a compile-time diagnostic (scan, parse, or resolve error)
// at the given line with no token context.
func (r *Reporter) Report(line int, message string) {
	r.report(line, "", message)
}

// ReportAtToken records a compile-time diagnostic positioned at a specific
// token, formatting <where> as " at end" for an EOF token or
// " at '<lexeme>'" otherwise.
func (r *Reporter) ReportAtToken(line int, lexeme string, isEOF bool, message string) {
	where := fmt.Sprintf(" at '%s'", lexeme)
	if isEOF {
		where = " at end"
	}
	r.report(line, where, message)
}

func (r *Reporter) report(line int, where, message string) {
	err := &Error{Line: line, Where: where, Message: message}
	r.errors = append(r.errors, err)
	r.hadError = true
	if r.Out != nil {
		fmt.Fprintln(r.Out, err.Format())
	}
}

// RuntimeError records a runtime diagnostic: the message followed by a
// second line `[line <n>]`, and sets HadRuntimeError.
func (r *Reporter) RuntimeError(line int, message string) {
	r.hadRuntimeError = true
	if r.Out != nil {
		fmt.Fprintf(r.Out, "%s\n[line %d]\n", message, line)
	}
}

// HadError reports whether any compile-time diagnostic has been recorded.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error has been recorded.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Errors returns the accumulated compile-time diagnostics.
func (r *Reporter) Errors() []*Error { return r.errors }

// Reset clears both sticky flags and the accumulated error list. The REPL
// calls this between lines.
func (r *Reporter) Reset() {
	r.errors = nil
	r.hadError = false
	r.hadRuntimeError = false
}
