package internal

import "strings"

// Expr is an expression node. The set of expression types is closed; the
// evaluator switches over all of them.
type Expr interface {
	// String returns the fully parenthesized prefix form of the expression.
	String() string
	expr()
}

// LiteralExpr is a literal value.
type LiteralExpr struct {
	Value Value
}

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Inner Expr
}

// UnaryExpr is a prefix operator applied to an operand.
type UnaryExpr struct {
	Op      Token
	Operand Expr
}

// BinaryExpr is an arithmetic, comparison, or equality operation.
type BinaryExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

// LogicalExpr is a short-circuiting and or or.
type LogicalExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

// VariableExpr reads a variable.
type VariableExpr struct {
	Name Token
}

// AssignExpr assigns to an existing variable.
type AssignExpr struct {
	Name  Token
	Value Expr
}

func (*LiteralExpr) expr()  {}
func (*GroupingExpr) expr() {}
func (*UnaryExpr) expr()    {}
func (*BinaryExpr) expr()   {}
func (*LogicalExpr) expr()  {}
func (*VariableExpr) expr() {}
func (*AssignExpr) expr()   {}

func (e *LiteralExpr) String() string {
	return e.Value.Repr()
}

func (e *GroupingExpr) String() string {
	return parenthesize("group", e.Inner)
}

func (e *UnaryExpr) String() string {
	return parenthesize(e.Op.Lexeme, e.Operand)
}

func (e *BinaryExpr) String() string {
	return parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (e *LogicalExpr) String() string {
	return parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (e *VariableExpr) String() string {
	return e.Name.Lexeme
}

func (e *AssignExpr) String() string {
	return "(= " + e.Name.Lexeme + " " + e.Value.String() + ")"
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Stmt is a statement node. Like Expr, the set of statement types is closed.
type Stmt interface {
	String() string
	stmt()
}

// ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	Expr Expr
}

// PrintStmt writes the value of an expression to the output.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares a variable in the innermost scope. Init is a nil literal
// when the declaration has no initializer.
type VarStmt struct {
	Name Token
	Init Expr
}

// BlockStmt executes statements in a new scope.
type BlockStmt struct {
	Stmts []Stmt
}

// IfStmt is a conditional. Else is nil if there is no else branch.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt is a loop. For loops are also parsed to WhileStmts.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (*ExprStmt) stmt()  {}
func (*PrintStmt) stmt() {}
func (*VarStmt) stmt()   {}
func (*BlockStmt) stmt() {}
func (*IfStmt) stmt()    {}
func (*WhileStmt) stmt() {}

func (s *ExprStmt) String() string {
	return s.Expr.String()
}

func (s *PrintStmt) String() string {
	return "print " + s.Expr.String()
}

func (s *VarStmt) String() string {
	return "var " + s.Name.Lexeme + " = " + s.Init.String()
}

func (s *BlockStmt) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, st := range s.Stmts {
		b.WriteString(st.String())
		b.WriteByte(' ')
	}
	b.WriteByte('}')
	return b.String()
}

func (s *IfStmt) String() string {
	r := "if " + s.Cond.String() + " then " + s.Then.String()
	if s.Else != nil {
		r += " else " + s.Else.String()
	}
	return r
}

func (s *WhileStmt) String() string {
	return "while " + s.Cond.String() + " " + s.Body.String()
}
