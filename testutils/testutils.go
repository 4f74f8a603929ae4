// Package testutils provides utilities for testing Lox code in Go.
package testutils

import (
	"errors"
	"strings"
	"testing"

	"github.com/zephyrtronium/lox"
)

// TestingInterpreter returns a new interpreter for testing Lox, along with the
// buffers receiving its output and its error reports. Unlike a VM shared
// between tests, each interpreter starts with no variables defined.
func TestingInterpreter() (in *lox.Interpreter, out, errs *strings.Builder) {
	out, errs = new(strings.Builder), new(strings.Builder)
	return lox.NewInterpreter(out, errs), out, errs
}

// A SourceTestCase is a test case containing Lox source code and a predicate
// to check the result.
type SourceTestCase struct {
	// Source is the Lox source code to execute.
	Source string
	// Pass is a predicate taking everything the program printed and the error
	// from running it. If Pass returns false, then the test fails.
	Pass func(out string, err error) bool
}

// TestFunc returns a test function for the test case. This uses a new
// TestingInterpreter to run the code.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		in, out, errs := TestingInterpreter()
		err := in.DoString(c.Source)
		if !c.Pass(out.String(), err) {
			if errs.Len() != 0 {
				t.Errorf("%s: %q produced wrong result; output:\n%s\nerrors:\n%s", name, c.Source, out.String(), errs.String())
			} else {
				t.Errorf("%s: %q produced wrong result; output:\n%s\nerror: %v", name, c.Source, out.String(), err)
			}
		}
	}
}

// PassOutput returns a Pass function for a SourceTestCase that predicates on
// the program running without error and printing exactly want.
func PassOutput(want string) func(string, error) bool {
	return func(out string, err error) bool {
		return err == nil && out == want
	}
}

// PassRuntimeError returns a Pass function for a SourceTestCase that returns
// true iff the program stopped with a runtime error whose message is msg after
// printing out. An empty msg matches any runtime error.
func PassRuntimeError(out, msg string) func(string, error) bool {
	return func(o string, err error) bool {
		var rerr *lox.RuntimeError
		if !errors.As(err, &rerr) || o != out {
			return false
		}
		return msg == "" || rerr.Msg == msg
	}
}

// PassSyntaxError returns a Pass function for a SourceTestCase that returns
// true iff the program failed to compile, so that nothing was printed, with
// exactly the given syntax errors in their reported form.
func PassSyntaxError(want ...string) func(string, error) bool {
	return func(out string, err error) bool {
		var l lox.ErrorList
		if out != "" || !errors.As(err, &l) || len(l) != len(want) {
			return false
		}
		for i, e := range l {
			if e.Error() != want[i] {
				return false
			}
		}
		return true
	}
}

// PassFailure returns a Pass function for a SourceTestCase that returns true
// iff running the program produced any error.
func PassFailure() func(string, error) bool {
	return func(out string, err error) bool {
		return err != nil
	}
}
