package internal

import (
	"strconv"
	"unicode/utf8"
)

// scanner holds the state of a single scan. start is the byte offset of the
// token being lexed and pos is the offset of the next unread byte.
type scanner struct {
	src    string
	start  int
	pos    int
	line   int
	tokens []Token
	errs   ErrorList
	eh     ErrorHandler
}

// lexFn is a lexer state function. Each lexFn lexes at most one token and
// returns the next lexFn to use, or nil at the end of input.
type lexFn func(s *scanner) lexFn

// Scan converts source text into tokens. Scanning does not stop at errors:
// every error is passed to eh, if it is not nil, and the full list is
// returned. The token sequence always ends with an EOF token.
func Scan(src string, eh ErrorHandler) ([]Token, error) {
	s := &scanner{src: src, line: 1, eh: eh}
	for state := eatSpace; state != nil; {
		state = state(s)
	}
	s.tokens = append(s.tokens, Token{Kind: EOF, Line: s.line})
	return s.tokens, s.errs.Err()
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

// next consumes and returns the next rune.
func (s *scanner) next() rune {
	r, n := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += n
	return r
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

// peekNext returns the byte after the next one, or 0 if there is none.
func (s *scanner) peekNext() byte {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

// match consumes the next byte if it is c.
func (s *scanner) match(c byte) bool {
	if s.peek() != c {
		return false
	}
	s.pos++
	return true
}

// emit appends a token spanning start to pos and returns eatSpace as the
// default next state.
func (s *scanner) emit(kind TokenKind, literal Value) lexFn {
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Lexeme:  s.src[s.start:s.pos],
		Literal: literal,
		Line:    s.line,
	})
	return eatSpace
}

// fail records a scan error at the current line.
func (s *scanner) fail(msg string) {
	err := s.errs.Add(s.line, "", msg)
	if s.eh != nil {
		s.eh(err)
	}
}

// eatSpace consumes whitespace and comments and decides the next lexFn.
func eatSpace(s *scanner) lexFn {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.pos++
		case '\n':
			s.pos++
			s.line++
		case '/':
			if s.peekNext() != '/' {
				return lexPunct
			}
			for !s.atEnd() && s.peek() != '\n' {
				s.pos++
			}
		default:
			c := s.peek()
			switch {
			case isDigit(c):
				return lexNumber
			case isAlpha(c):
				return lexIdent
			case c == '"':
				return lexString
			}
			return lexPunct
		}
	}
	return nil
}

// lexPunct lexes a one or two character operator or punctuation mark.
func lexPunct(s *scanner) lexFn {
	s.start = s.pos
	r := s.next()
	switch r {
	case '(':
		return s.emit(LeftParen, NilValue)
	case ')':
		return s.emit(RightParen, NilValue)
	case '{':
		return s.emit(LeftBrace, NilValue)
	case '}':
		return s.emit(RightBrace, NilValue)
	case ',':
		return s.emit(Comma, NilValue)
	case '.':
		return s.emit(Dot, NilValue)
	case '-':
		return s.emit(Minus, NilValue)
	case '+':
		return s.emit(Plus, NilValue)
	case ';':
		return s.emit(Semicolon, NilValue)
	case '*':
		return s.emit(Star, NilValue)
	case '/':
		return s.emit(Slash, NilValue)
	case '!':
		return s.emitEither('=', BangEqual, Bang)
	case '=':
		return s.emitEither('=', EqualEqual, Equal)
	case '<':
		return s.emitEither('=', LessEqual, Less)
	case '>':
		return s.emitEither('=', GreaterEqual, Greater)
	}
	s.fail("Unexpected character.")
	return eatSpace
}

// emitEither emits two if the next byte is c and one otherwise.
func (s *scanner) emitEither(c byte, two, one TokenKind) lexFn {
	if s.match(c) {
		return s.emit(two, NilValue)
	}
	return s.emit(one, NilValue)
}

// lexString lexes a string literal. Strings may span lines.
func lexString(s *scanner) lexFn {
	s.start = s.pos
	s.pos++ // opening quote
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.pos++
	}
	if s.atEnd() {
		s.fail("Unterminated string.")
		return nil
	}
	s.pos++ // closing quote
	return s.emit(String, StringValue(s.src[s.start+1:s.pos-1]))
}

// lexNumber lexes a number literal. A fractional part is only consumed when
// the dot is followed by a digit.
func lexNumber(s *scanner) lexFn {
	s.start = s.pos
	for isDigit(s.peek()) {
		s.pos++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.pos++
		for isDigit(s.peek()) {
			s.pos++
		}
	}
	// Digits with at most one dot always parse. Out-of-range literals become
	// infinity, which is what ParseFloat returns alongside ErrRange.
	n, _ := strconv.ParseFloat(s.src[s.start:s.pos], 64)
	return s.emit(Number, NumberValue(n))
}

// lexIdent lexes an identifier or keyword.
func lexIdent(s *scanner) lexFn {
	s.start = s.pos
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.pos++
	}
	text := s.src[s.start:s.pos]
	if kind, ok := keywords[text]; ok {
		return s.emit(kind, IdentValue(text))
	}
	return s.emit(Identifier, IdentValue(text))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
