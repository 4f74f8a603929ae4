package internal

// An Operator is one precedence level of infix operators.
type Operator struct {
	// Kinds are the token kinds at this level.
	Kinds []TokenKind
	// Logical is true if the level builds short-circuiting LogicalExprs
	// instead of BinaryExprs.
	Logical bool
}

// OpTable lists the infix operator levels from least to most binding. Every
// level is left-associative. Assignment binds less than any of these and is
// parsed separately, since it is right-associative and restricted to
// variable targets.
var OpTable = [...]Operator{
	{Kinds: []TokenKind{Or}, Logical: true},
	{Kinds: []TokenKind{And}, Logical: true},
	{Kinds: []TokenKind{BangEqual, EqualEqual}},
	{Kinds: []TokenKind{Greater, GreaterEqual, Less, LessEqual}},
	{Kinds: []TokenKind{Minus, Plus}},
	{Kinds: []TokenKind{Slash, Star}},
}

// infix parses the operators at level prec and above, folding each operator
// into the expression to its left.
func (p *parser) infix(prec int) (Expr, error) {
	if prec >= len(OpTable) {
		return p.unary()
	}
	left, err := p.infix(prec + 1)
	if err != nil {
		return nil, err
	}
	op := &OpTable[prec]
	for p.match(op.Kinds...) {
		tok := p.previous()
		right, err := p.infix(prec + 1)
		if err != nil {
			return nil, err
		}
		if op.Logical {
			left = &LogicalExpr{Left: left, Op: tok, Right: right}
		} else {
			left = &BinaryExpr{Left: left, Op: tok, Right: right}
		}
	}
	return left, nil
}
