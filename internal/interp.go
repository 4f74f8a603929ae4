package internal

import (
	"io"
)

// Interpreter executes programs. Variables defined by one call to DoString or
// Interpret remain visible to later calls. An Interpreter is not safe for
// concurrent use.
type Interpreter struct {
	// Out receives the output of print statements.
	Out io.Writer
	// Errs reports errors found by DoString. If it is nil, errors are only
	// returned.
	Errs *Reporter
	// Debug, if not nil, is called with each statement before it executes.
	Debug func(s Stmt)

	env *Environment
}

// NewInterpreter creates an interpreter printing to out and reporting errors
// to errs.
func NewInterpreter(out, errs io.Writer) *Interpreter {
	return &Interpreter{
		Out:  out,
		Errs: NewReporter(errs),
		env:  NewEnvironment(),
	}
}

// Env returns the interpreter's variable environment.
func (in *Interpreter) Env() *Environment {
	if in.env == nil {
		in.env = NewEnvironment()
	}
	return in.env
}

// Interpret executes statements in order. It stops at the first runtime error
// and returns it. Errors are not reported.
func (in *Interpreter) Interpret(stmts []Stmt) error {
	in.Env()
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// Compile scans and parses src. Syntax errors are reported as they are found,
// and all of them are returned together.
func (in *Interpreter) Compile(src string) ([]Stmt, error) {
	var eh ErrorHandler
	if in.Errs != nil {
		eh = in.Errs.Syntax
	}
	tokens, serr := Scan(src, eh)
	stmts, perr := Parse(tokens, eh)
	var errs ErrorList
	if l, ok := serr.(ErrorList); ok {
		errs = append(errs, l...)
	}
	if l, ok := perr.(ErrorList); ok {
		errs = append(errs, l...)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return stmts, nil
}

// DoString runs one unit of source code. Nothing executes if there is any
// syntax error. A runtime error stops execution and is reported once.
func (in *Interpreter) DoString(src string) error {
	stmts, err := in.Compile(src)
	if err != nil {
		return err
	}
	if err := in.Interpret(stmts); err != nil {
		if in.Errs != nil {
			in.Errs.Runtime(err)
		}
		return err
	}
	return nil
}
