package internal

import "fmt"

// execute runs a single statement.
func (in *Interpreter) execute(s Stmt) error {
	in.debugStmt(s)
	switch s := s.(type) {
	case *ExprStmt:
		_, err := in.Evaluate(s.Expr)
		return err
	case *PrintStmt:
		v, err := in.Evaluate(s.Expr)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(in.Out, v.String()); err != nil {
			return &RuntimeError{Msg: "Could not print: " + err.Error()}
		}
		return nil
	case *VarStmt:
		v, err := in.Evaluate(s.Init)
		if err != nil {
			return err
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil
	case *BlockStmt:
		return in.block(s.Stmts)
	case *IfStmt:
		cond, err := in.Evaluate(s.Cond)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil
	case *WhileStmt:
		return in.loop(s)
	}
	panic(fmt.Sprintf("lox: unknown statement type %T", s))
}

// block runs statements in a new scope. The scope is left whether or not a
// statement fails.
func (in *Interpreter) block(stmts []Stmt) error {
	defer in.env.Scope()()
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// loop runs a while statement. The condition is evaluated before every
// iteration, including the first.
func (in *Interpreter) loop(s *WhileStmt) error {
	for {
		cond, err := in.Evaluate(s.Cond)
		if err != nil {
			return err
		}
		if !Truthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}
