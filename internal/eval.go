package internal

import "fmt"

// Evaluate computes the value of an expression.
func (in *Interpreter) Evaluate(e Expr) (Value, error) {
	switch e := e.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *GroupingExpr:
		return in.Evaluate(e.Inner)
	case *UnaryExpr:
		return in.unary(e)
	case *BinaryExpr:
		return in.binary(e)
	case *LogicalExpr:
		return in.logical(e)
	case *VariableExpr:
		return in.Env().Get(e.Name)
	case *AssignExpr:
		v, err := in.Evaluate(e.Value)
		if err != nil {
			return NilValue, err
		}
		if err := in.Env().Assign(e.Name, v); err != nil {
			return NilValue, err
		}
		return v, nil
	}
	panic(fmt.Sprintf("lox: unknown expression type %T", e))
}

func (in *Interpreter) unary(e *UnaryExpr) (Value, error) {
	v, err := in.Evaluate(e.Operand)
	if err != nil {
		return NilValue, err
	}
	switch e.Op.Kind {
	case Minus:
		n, ok := v.AsNumber()
		if !ok {
			return NilValue, runtimeErrorf(&e.Op, "Operand must be a number, got %v.", v.Kind())
		}
		return NumberValue(-n), nil
	case Bang:
		return BoolValue(!Truthy(v)), nil
	}
	return NilValue, runtimeErrorf(&e.Op, "Unsupported unary operator '%s'.", e.Op.Lexeme)
}

// binary evaluates both operands, left first, then applies the operator.
func (in *Interpreter) binary(e *BinaryExpr) (Value, error) {
	l, err := in.Evaluate(e.Left)
	if err != nil {
		return NilValue, err
	}
	r, err := in.Evaluate(e.Right)
	if err != nil {
		return NilValue, err
	}
	switch e.Op.Kind {
	case EqualEqual:
		return BoolValue(ValuesEqual(l, r)), nil
	case BangEqual:
		return BoolValue(!ValuesEqual(l, r)), nil
	}
	if x, ok := l.AsNumber(); ok {
		if y, ok := r.AsNumber(); ok {
			return arith(e.Op, x, y)
		}
	}
	if x, ok := l.AsString(); ok {
		if y, ok := r.AsString(); ok {
			if e.Op.Kind == Plus {
				return StringValue(x + y), nil
			}
			return NilValue, runtimeErrorf(&e.Op, "Unsupported binary operator '%s' for strings.", e.Op.Lexeme)
		}
	}
	return NilValue, runtimeErrorf(&e.Op, "Unsupported binary operator '%s' for types (%v, %v).", e.Op.Lexeme, l.Kind(), r.Kind())
}

// arith applies a numeric operator. Division by zero follows IEEE 754.
func arith(op Token, x, y float64) (Value, error) {
	switch op.Kind {
	case Plus:
		return NumberValue(x + y), nil
	case Minus:
		return NumberValue(x - y), nil
	case Star:
		return NumberValue(x * y), nil
	case Slash:
		return NumberValue(x / y), nil
	case Greater:
		return BoolValue(x > y), nil
	case GreaterEqual:
		return BoolValue(x >= y), nil
	case Less:
		return BoolValue(x < y), nil
	case LessEqual:
		return BoolValue(x <= y), nil
	}
	return NilValue, runtimeErrorf(&op, "Unsupported binary operator '%s' for numbers.", op.Lexeme)
}

// logical evaluates a short-circuiting operator. The result is whichever
// operand decided it, not necessarily a boolean.
func (in *Interpreter) logical(e *LogicalExpr) (Value, error) {
	l, err := in.Evaluate(e.Left)
	if err != nil {
		return NilValue, err
	}
	switch e.Op.Kind {
	case Or:
		if Truthy(l) {
			return l, nil
		}
	case And:
		if !Truthy(l) {
			return l, nil
		}
	default:
		return NilValue, runtimeErrorf(&e.Op, "Unsupported logical operator '%s'.", e.Op.Lexeme)
	}
	return in.Evaluate(e.Right)
}
