package internal

/*
This file is the recursive-descent parser for statements and unary and
primary expressions. Infix operator precedence is handled in optable.go.
*/

// parser holds the state of a single parse.
type parser struct {
	tokens  []Token
	current int
	errs    ErrorList
	eh      ErrorHandler
}

func newParser(tokens []Token, eh ErrorHandler) *parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Kind: EOF, Line: line})
	}
	return &parser{tokens: tokens, eh: eh}
}

// Parse converts a token sequence into statements. After a syntax error, the
// parser discards tokens up to the next statement boundary and continues, so
// one parse can find several independent errors. Each error is passed to eh,
// if it is not nil, and the full list is returned. The returned statements
// are only meaningful when the error is nil.
func Parse(tokens []Token, eh ErrorHandler) ([]Stmt, error) {
	p := newParser(tokens, eh)
	var stmts []Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts, p.errs.Err()
}

// ParseExpr parses a token sequence holding exactly one expression.
func ParseExpr(tokens []Token, eh ErrorHandler) (Expr, error) {
	p := newParser(tokens, eh)
	e, err := p.expression()
	if err != nil {
		return nil, p.errs
	}
	if !p.atEnd() {
		p.fail(p.peek(), "Expect end of expression.")
		return nil, p.errs
	}
	return e, nil
}

// declaration parses a declaration or statement. If it fails, the parser is
// synchronized and the result is nil.
func (p *parser) declaration() Stmt {
	var s Stmt
	var err error
	if p.match(Var) {
		s, err = p.varDeclaration()
	} else {
		s, err = p.statement()
	}
	if err != nil {
		p.synchronize()
		return nil
	}
	return s
}

func (p *parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer Expr = &LiteralExpr{Value: NilValue}
	if p.match(Equal) {
		if initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Init: initializer}, nil
}

func (p *parser) statement() (Stmt, error) {
	switch {
	case p.match(For):
		return p.forStatement()
	case p.match(If):
		return p.ifStatement()
	case p.match(Print):
		return p.printStatement()
	case p.match(While):
		return p.whileStatement()
	case p.match(LeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Stmts: stmts}, nil
	}
	return p.expressionStatement()
}

// forStatement parses a for loop and desugars it into
//
//	{ init; while (cond) { body; incr } }
//
// leaving out the outer block when there is no initializer and the inner
// block when there is no increment.
func (p *parser) forStatement() (Stmt, error) {
	if _, err := p.consume(LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}
	var initializer Stmt
	var err error
	switch {
	case p.match(Semicolon):
		// no initializer
	case p.match(Var):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr = &LiteralExpr{Value: BoolValue(true)}
	if !p.check(Semicolon) {
		if cond, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr Expr
	if !p.check(RightParen) {
		if incr, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(RightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if incr != nil {
		body = &BlockStmt{Stmts: []Stmt{body, &ExprStmt{Expr: incr}}}
	}
	body = &WhileStmt{Cond: cond, Body: body}
	if initializer != nil {
		body = &BlockStmt{Stmts: []Stmt{initializer, body}}
	}
	return body, nil
}

func (p *parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	s := &IfStmt{Cond: cond, Then: then}
	if p.match(Else) {
		if s.Else, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *parser) printStatement() (Stmt, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: e}, nil
}

func (p *parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// block parses the declarations of a block after its opening brace. Failed
// declarations inside the block are synchronized and dropped; only a missing
// closing brace fails the block itself.
func (p *parser) block() ([]Stmt, error) {
	var stmts []Stmt
	for !p.check(RightBrace) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	if _, err := p.consume(RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *parser) expressionStatement() (Stmt, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: e}, nil
}

func (p *parser) expression() (Expr, error) {
	return p.assignment()
}

// assignment parses a right-associative assignment. The target is parsed as
// an ordinary expression first and must turn out to be a variable.
func (p *parser) assignment() (Expr, error) {
	e, err := p.infix(0)
	if err != nil {
		return nil, err
	}
	if !p.match(Equal) {
		return e, nil
	}
	equals := p.previous()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if v, ok := e.(*VariableExpr); ok {
		return &AssignExpr{Name: v.Name, Value: value}, nil
	}
	return nil, p.fail(equals, "Invalid assignment target.")
}

func (p *parser) unary() (Expr, error) {
	if p.match(Bang, Minus) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Operand: operand}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	switch {
	case p.match(False):
		return &LiteralExpr{Value: BoolValue(false)}, nil
	case p.match(True):
		return &LiteralExpr{Value: BoolValue(true)}, nil
	case p.match(Nil):
		return &LiteralExpr{Value: NilValue}, nil
	case p.match(Number, String):
		return &LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(Identifier):
		return &VariableExpr{Name: p.previous()}, nil
	case p.match(LeftParen):
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpr{Inner: e}, nil
	}
	return nil, p.fail(p.peek(), "Expect expression.")
}

// match consumes the current token if it has any of the given kinds.
func (p *parser) match(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume consumes the current token if it has the given kind and reports a
// syntax error otherwise.
func (p *parser) consume(kind TokenKind, msg string) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.fail(p.peek(), msg)
}

func (p *parser) check(kind TokenKind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *parser) advance() Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) atEnd() bool {
	return p.peek().Kind == EOF
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

// fail records a syntax error at tok and returns it.
func (p *parser) fail(tok Token, msg string) error {
	err := p.errs.Add(tok.Line, tok.where(), msg)
	if p.eh != nil {
		p.eh(err)
	}
	return err
}

// synchronize discards tokens until the start of the next statement: the
// current token is always dropped, then tokens are dropped until a semicolon
// has been consumed or the next token begins a statement.
func (p *parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == Semicolon {
			return
		}
		switch p.peek().Kind {
		case Class, Fun, Var, For, If, While, Print, Return:
			return
		}
		p.advance()
	}
}
