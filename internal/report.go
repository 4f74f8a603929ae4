package internal

import (
	"errors"
	"fmt"
	"io"
)

// Reporter writes syntax and runtime errors for a user to read. It also
// remembers whether any error has been reported since it was last reset.
type Reporter struct {
	W io.Writer

	hadError bool
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{W: w}
}

// Error reports a syntax error at a source line.
func (r *Reporter) Error(line int, where, msg string) {
	r.Syntax(&SyntaxError{Line: line, Where: where, Msg: msg})
}

// Syntax reports a scan or parse error. It is suitable for use as an
// ErrorHandler.
func (r *Reporter) Syntax(err *SyntaxError) {
	r.hadError = true
	fmt.Fprintln(r.W, err.Error())
}

// Runtime reports an error that stopped execution. Errors which are not
// RuntimeErrors are reported by their messages alone.
func (r *Reporter) Runtime(err error) {
	r.hadError = true
	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		fmt.Fprintln(r.W, rerr.Error())
		return
	}
	fmt.Fprintln(r.W, err)
}

// HadError returns whether an error has been reported since the last Reset.
func (r *Reporter) HadError() bool {
	return r.hadError
}

// Reset clears the error flag.
func (r *Reporter) Reset() {
	r.hadError = false
}
