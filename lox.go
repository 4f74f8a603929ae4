package lox

import (
	"io"

	"golang.org/x/text/encoding"

	"github.com/zephyrtronium/lox/internal"
)

// An Interpreter executes Lox programs.
type Interpreter = internal.Interpreter

// Environment is the stack of variable scopes used by an Interpreter.
type Environment = internal.Environment

// A Binding is a variable visible from the innermost scope of an Environment.
type Binding = internal.Binding

// A Value is a Lox value: nil, a boolean, a number, or a string.
type Value = internal.Value

// A Token is a single lexical element of Lox source code.
type Token = internal.Token

// TokenKind is the lexical class of a token.
type TokenKind = internal.TokenKind

// Expr is a node of an expression syntax tree.
type Expr = internal.Expr

// Stmt is a node of a statement syntax tree.
type Stmt = internal.Stmt

// A SyntaxError is a scan or parse error at a source line.
type SyntaxError = internal.SyntaxError

// ErrorList is the list of syntax errors from one scan or parse.
type ErrorList = internal.ErrorList

// An ErrorHandler is called with each syntax error as it is found.
type ErrorHandler = internal.ErrorHandler

// A RuntimeError aborts execution of a program.
type RuntimeError = internal.RuntimeError

// Reporter writes errors for a user to read.
type Reporter = internal.Reporter

// Stepper is a debug hook that hands each statement to another goroutine.
type Stepper = internal.Stepper

// DebugMessage holds a statement about to execute.
type DebugMessage = internal.DebugMessage

// Sentinel errors for use with errors.Is.
var (
	ErrSyntax  = internal.ErrSyntax
	ErrRuntime = internal.ErrRuntime
	ErrOpen    = internal.ErrOpen
)

// NilValue is Lox's nil.
var NilValue = internal.NilValue

// NewInterpreter creates an interpreter printing to out and reporting errors
// to errs.
func NewInterpreter(out, errs io.Writer) *Interpreter {
	return internal.NewInterpreter(out, errs)
}

// NewStepper creates a Stepper.
func NewStepper() *Stepper {
	return internal.NewStepper()
}

// Scan converts source text into tokens. The result always ends with an EOF
// token. Every error is passed to eh, if it is not nil, and all of them are
// returned together.
func Scan(src string, eh ErrorHandler) ([]Token, error) {
	return internal.Scan(src, eh)
}

// Parse converts tokens into statements, recovering after each syntax error
// to find more.
func Parse(tokens []Token, eh ErrorHandler) ([]Stmt, error) {
	return internal.Parse(tokens, eh)
}

// ParseExpr parses tokens holding exactly one expression.
func ParseExpr(tokens []Token, eh ErrorHandler) (Expr, error) {
	return internal.ParseExpr(tokens, eh)
}

// Encoding returns the text encoding with the given name for use with
// DoReader and DoFile.
func Encoding(name string) (encoding.Encoding, error) {
	return internal.Encoding(name)
}

// ReadSource reads all of r and decodes it to UTF-8 from enc, or from UTF-8 if
// enc is nil. A UTF-8 or UTF-16 byte order mark overrides enc.
func ReadSource(r io.Reader, enc encoding.Encoding) (string, error) {
	return internal.ReadSource(r, enc)
}

// ReadFile reads and decodes the file at path as with ReadSource. Errors
// opening or reading the file wrap ErrOpen.
func ReadFile(path string, enc encoding.Encoding) (string, error) {
	return internal.ReadFile(path, enc)
}
