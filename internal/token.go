package internal

import "fmt"

// TokenKind is the lexical class of a token.
type TokenKind int

// Token kinds.
const (
	// Single-character tokens.
	LeftParen TokenKind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF
)

var kindNames = [...]string{
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	Comma:        "Comma",
	Dot:          "Dot",
	Minus:        "Minus",
	Plus:         "Plus",
	Semicolon:    "Semicolon",
	Slash:        "Slash",
	Star:         "Star",
	Bang:         "Bang",
	BangEqual:    "BangEqual",
	Equal:        "Equal",
	EqualEqual:   "EqualEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Identifier:   "Identifier",
	String:       "String",
	Number:       "Number",
	And:          "And",
	Class:        "Class",
	Else:         "Else",
	False:        "False",
	Fun:          "Fun",
	For:          "For",
	If:           "If",
	Nil:          "Nil",
	Or:           "Or",
	Print:        "Print",
	Return:       "Return",
	Super:        "Super",
	This:         "This",
	True:         "True",
	Var:          "Var",
	While:        "While",
	EOF:          "EOF",
}

// String returns the name of the token kind.
func (k TokenKind) String() string {
	if k < LeftParen || k > EOF {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return kindNames[k]
}

// keywords maps reserved words to their token kinds. It is never modified
// after initialization.
var keywords = map[string]TokenKind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// A Token is a single lexical element. Lexeme is the exact source text the
// token was scanned from. Literal holds the parsed payload of number and
// string tokens and the raw name of identifiers and keywords; it is Nil for
// punctuation and EOF.
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal Value
	Line    int
}

// String formats the token for debugging.
func (t Token) String() string {
	return fmt.Sprintf("%v %q %s", t.Kind, t.Lexeme, t.Literal.Repr())
}

// where describes the token's location for syntax error messages.
func (t Token) where() string {
	if t.Kind == EOF {
		return "at end"
	}
	return "at '" + t.Lexeme + "'"
}
