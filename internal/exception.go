package internal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax matches every error produced while scanning or parsing.
	ErrSyntax = errors.New("syntax error")
	// ErrRuntime matches every error produced while executing a program.
	ErrRuntime = errors.New("runtime error")
	// ErrOpen matches errors opening or reading a source file.
	ErrOpen = errors.New("could not open source")
)

// A SyntaxError is a scan or parse error at a source line. Where describes
// the offending token, e.g. "at 'x'" or "at end", and is empty for scan
// errors.
type SyntaxError struct {
	Line  int
	Where string
	Msg   string
}

// Error formats the error the way the error reporter prints it.
func (err *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error %s : %s", err.Line, err.Where, err.Msg)
}

// Is allows errors.Is(err, ErrSyntax).
func (err *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// An ErrorHandler is called with each syntax error as it is found.
type ErrorHandler func(err *SyntaxError)

// ErrorList is the list of syntax errors from one scan or parse.
type ErrorList []*SyntaxError

// Add appends a syntax error to the list.
func (l *ErrorList) Add(line int, where, msg string) *SyntaxError {
	err := &SyntaxError{Line: line, Where: where, Msg: msg}
	*l = append(*l, err)
	return err
}

// Error joins the messages of all errors in the list, one per line.
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	for i, err := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Is allows errors.Is(err, ErrSyntax).
func (l ErrorList) Is(target error) bool {
	return target == ErrSyntax
}

// Err returns nil if the list is empty and the list itself otherwise.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// A RuntimeError aborts execution of a program. Token is the token the error
// is attributed to, or nil if there is none.
type RuntimeError struct {
	Token *Token
	Msg   string
}

// runtimeErrorf creates a RuntimeError attributed to tok.
func runtimeErrorf(tok *Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Msg: fmt.Sprintf(format, args...)}
}

// Error formats the error the way the error reporter prints it.
func (err *RuntimeError) Error() string {
	if err.Token == nil {
		return err.Msg
	}
	return fmt.Sprintf("%s\n[line %d]", err.Msg, err.Token.Line)
}

// Is allows errors.Is(err, ErrRuntime).
func (err *RuntimeError) Is(target error) bool {
	return target == ErrRuntime
}
