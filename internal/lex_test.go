package internal

import (
	"errors"
	"testing"
)

// TestLexSingles tests that individual tokens have the correct kinds, lexemes,
// and literals.
func TestLexSingles(t *testing.T) {
	cases := map[string]struct {
		text string
		kind TokenKind
		lex  string
		lit  Value
	}{
		"LeftParen":      {"(", LeftParen, "(", NilValue},
		"RightParen":     {")", RightParen, ")", NilValue},
		"LeftBrace":      {"{", LeftBrace, "{", NilValue},
		"RightBrace":     {"}", RightBrace, "}", NilValue},
		"Comma":          {",", Comma, ",", NilValue},
		"Dot":            {".", Dot, ".", NilValue},
		"Minus":          {"-", Minus, "-", NilValue},
		"Plus":           {"+", Plus, "+", NilValue},
		"Semicolon":      {";", Semicolon, ";", NilValue},
		"Slash":          {"/", Slash, "/", NilValue},
		"Star":           {"*", Star, "*", NilValue},
		"Bang":           {"!", Bang, "!", NilValue},
		"BangEqual":      {"!=", BangEqual, "!=", NilValue},
		"Equal":          {"=", Equal, "=", NilValue},
		"EqualEqual":     {"==", EqualEqual, "==", NilValue},
		"Greater":        {">", Greater, ">", NilValue},
		"GreaterEqual":   {">=", GreaterEqual, ">=", NilValue},
		"Less":           {"<", Less, "<", NilValue},
		"LessEqual":      {"<=", LessEqual, "<=", NilValue},
		"Ident-alpha":    {"abcd", Identifier, "abcd", IdentValue("abcd")},
		"Ident-alnum":    {"a123", Identifier, "a123", IdentValue("a123")},
		"Ident-under":    {"_a_1", Identifier, "_a_1", IdentValue("_a_1")},
		"Ident-keyword+": {"orchid", Identifier, "orchid", IdentValue("orchid")},
		"Keyword-and":    {"and", And, "and", IdentValue("and")},
		"Keyword-while":  {"while", While, "while", IdentValue("while")},
		"Keyword-nil":    {"nil", Nil, "nil", IdentValue("nil")},
		"Number-int":     {"1234", Number, "1234", NumberValue(1234)},
		"Number-frac":    {"45.67", Number, "45.67", NumberValue(45.67)},
		"String-plain":   {`"abcd"`, String, `"abcd"`, StringValue("abcd")},
		"String-empty":   {`""`, String, `""`, StringValue("")},
		"String-newline": {"\"a\nb\"", String, "\"a\nb\"", StringValue("a\nb")},
		"Space":          {" \t\r abcd \t\r ", Identifier, "abcd", IdentValue("abcd")},
		"Comment":        {"abcd // comment", Identifier, "abcd", IdentValue("abcd")},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			toks, err := Scan(c.text, nil)
			if err != nil {
				t.Fatalf("%q failed to scan: %v", c.text, err)
			}
			if len(toks) != 2 {
				t.Fatalf("%q scanned to wrong number of tokens: want 2, have %v", c.text, toks)
			}
			tok := toks[0]
			if tok.Kind != c.kind {
				t.Errorf("%q scanned as wrong kind: want %v, have %v", c.text, c.kind, tok.Kind)
			}
			if tok.Lexeme != c.lex {
				t.Errorf("%q scanned with wrong lexeme: want %q, have %q", c.text, c.lex, tok.Lexeme)
			}
			if tok.Literal != c.lit {
				t.Errorf("%q scanned with wrong literal: want %s, have %s", c.text, c.lit.Repr(), tok.Literal.Repr())
			}
			if toks[1].Kind != EOF {
				t.Errorf("%q has wrong last token: want EOF, have %v", c.text, toks[1])
			}
		})
	}
}

// TestLexMulti tests that the scanner obtains the correct sequences of token
// kinds.
func TestLexMulti(t *testing.T) {
	cases := map[string]struct {
		text  string
		kinds []TokenKind
	}{
		"Empty":       {"", nil},
		"OnlyComment": {"// nothing", nil},
		"MaximalMunch": {"!===<=>=", []TokenKind{
			BangEqual, EqualEqual, LessEqual, GreaterEqual,
		}},
		"SlashNotComment": {"a / b", []TokenKind{Identifier, Slash, Identifier}},
		"TrailingDot":     {"123.", []TokenKind{Number, Dot}},
		"LeadingDot":      {".5", []TokenKind{Dot, Number}},
		"MethodLike":      {"123.abs", []TokenKind{Number, Dot, Identifier}},
		"VarDecl": {"var x = 1;", []TokenKind{
			Var, Identifier, Equal, Number, Semicolon,
		}},
		"Print": {`print "hi";`, []TokenKind{Print, String, Semicolon}},
		"Block": {"{ x = x + 1; }", []TokenKind{
			LeftBrace, Identifier, Equal, Identifier, Plus, Number, Semicolon, RightBrace,
		}},
		"Reserved": {"class fun return super this", []TokenKind{
			Class, Fun, Return, Super, This,
		}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			toks, err := Scan(c.text, nil)
			if err != nil {
				t.Fatalf("%q failed to scan: %v", c.text, err)
			}
			want := append(c.kinds[:len(c.kinds):len(c.kinds)], EOF)
			if len(toks) != len(want) {
				t.Fatalf("%q scanned to wrong tokens: want kinds %v, have %v", c.text, want, toks)
			}
			for i, tok := range toks {
				if tok.Kind != want[i] {
					t.Errorf("%q token %d has wrong kind: want %v, have %v", c.text, i, want[i], tok.Kind)
				}
			}
		})
	}
}

// TestLexLines tests that tokens carry the line on which they end.
func TestLexLines(t *testing.T) {
	toks, err := Scan("a\nb // c\n\"d\ne\" f", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 4, 4, 4}
	if len(toks) != len(want) {
		t.Fatalf("wrong tokens: %v", toks)
	}
	for i, tok := range toks {
		if tok.Line != want[i] {
			t.Errorf("token %v on wrong line: want %d, have %d", tok, want[i], tok.Line)
		}
	}
}

// TestLexErrors tests that scan errors are reported without stopping the
// scan.
func TestLexErrors(t *testing.T) {
	cases := map[string]struct {
		text  string
		msgs  []string
		kinds []TokenKind
	}{
		"Unexpected": {"@", []string{"Unexpected character."}, nil},
		"Continues": {"a # b", []string{"Unexpected character."}, []TokenKind{
			Identifier, Identifier,
		}},
		"Several":      {"@ $", []string{"Unexpected character.", "Unexpected character."}, nil},
		"Unterminated": {`print "abc`, []string{"Unterminated string."}, []TokenKind{Print}},
		"NonASCII":     {"é", []string{"Unexpected character."}, nil},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var handled []*SyntaxError
			toks, err := Scan(c.text, func(err *SyntaxError) { handled = append(handled, err) })
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("%q gave wrong error: want syntax error, have %v", c.text, err)
			}
			l := err.(ErrorList)
			if len(l) != len(c.msgs) || len(handled) != len(c.msgs) {
				t.Fatalf("%q gave wrong errors: want %q, have %v (handled %d)", c.text, c.msgs, l, len(handled))
			}
			for i, e := range l {
				if e.Msg != c.msgs[i] {
					t.Errorf("%q error %d has wrong message: want %q, have %q", c.text, i, c.msgs[i], e.Msg)
				}
				if e.Where != "" {
					t.Errorf("%q error %d has location %q", c.text, i, e.Where)
				}
				if handled[i] != e {
					t.Errorf("%q error %d was not passed to the handler", c.text, i)
				}
			}
			want := append(c.kinds[:len(c.kinds):len(c.kinds)], EOF)
			if len(toks) != len(want) {
				t.Fatalf("%q scanned to wrong tokens: want kinds %v, have %v", c.text, want, toks)
			}
			for i, tok := range toks {
				if tok.Kind != want[i] {
					t.Errorf("%q token %d has wrong kind: want %v, have %v", c.text, i, want[i], tok.Kind)
				}
			}
		})
	}
}

// TestSyntaxErrorFormat tests the reported form of syntax errors.
func TestSyntaxErrorFormat(t *testing.T) {
	cases := map[string]struct {
		err  SyntaxError
		want string
	}{
		"Scan":  {SyntaxError{Line: 3, Msg: "Unexpected character."}, "[line 3] Error  : Unexpected character."},
		"AtEnd": {SyntaxError{Line: 1, Where: "at end", Msg: "Expect expression."}, "[line 1] Error at end : Expect expression."},
		"AtTok": {SyntaxError{Line: 2, Where: "at '='", Msg: "Invalid assignment target."}, "[line 2] Error at '=' : Invalid assignment target."},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Errorf("wrong format: want %q, have %q", c.want, got)
			}
		})
	}
}
