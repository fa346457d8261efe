// Package underscore is the public surface of the deferred-expression
// engine. A placeholder value captures a sequence of operations through
// chainable methods, producing a reusable expression that is evaluated
// later against concrete input:
//
//	double := underscore.U.Mul(2).Add(1)
//	v, _ := double.Eval(5) // 11
//
// Expressions are immutable: every method returns a new expression and
// never modifies its receiver, so deriving two expressions from a shared
// base keeps them fully independent.
package underscore

import (
	"github.com/funvibe/underscore/internal/expr"
	"github.com/funvibe/underscore/internal/object"
)

// U is the placeholder: the bare identity expression all others derive from.
var U = &Expr{node: expr.Identity()}

// Expr is a deferred expression. The zero value is not usable; derive
// expressions from U.
type Expr struct {
	node *expr.Node
}

// Identity returns a fresh bare placeholder, equivalent to U.
func Identity() *Expr {
	return &Expr{node: expr.Identity()}
}

func (e *Expr) String() string { return e.node.String() }

// binary routes to multi-reference construction when the operand is itself
// an expression, otherwise captures it as a constant.
func (e *Expr) binary(op expr.Op, other interface{}) *Expr {
	if o, ok := other.(*Expr); ok {
		return &Expr{node: expr.MultiRef(e.node, o.node, op)}
	}
	return &Expr{node: expr.Combine(e.node, object.FromGo(other), op)}
}

func (e *Expr) Add(other interface{}) *Expr { return e.binary(expr.OpAdd, other) }
func (e *Expr) Sub(other interface{}) *Expr { return e.binary(expr.OpSub, other) }
func (e *Expr) Mul(other interface{}) *Expr { return e.binary(expr.OpMul, other) }
func (e *Expr) Div(other interface{}) *Expr { return e.binary(expr.OpDiv, other) }
func (e *Expr) Pow(other interface{}) *Expr { return e.binary(expr.OpPow, other) }
func (e *Expr) Mod(other interface{}) *Expr { return e.binary(expr.OpMod, other) }

func (e *Expr) Gt(other interface{}) *Expr { return e.binary(expr.OpGt, other) }
func (e *Expr) Lt(other interface{}) *Expr { return e.binary(expr.OpLt, other) }
func (e *Expr) Eq(other interface{}) *Expr { return e.binary(expr.OpEq, other) }
func (e *Expr) Ne(other interface{}) *Expr { return e.binary(expr.OpNe, other) }
func (e *Expr) Ge(other interface{}) *Expr { return e.binary(expr.OpGe, other) }
func (e *Expr) Le(other interface{}) *Expr { return e.binary(expr.OpLe, other) }

func (e *Expr) And(other interface{}) *Expr { return e.binary(expr.OpAnd, other) }
func (e *Expr) Or(other interface{}) *Expr  { return e.binary(expr.OpOr, other) }
func (e *Expr) Xor(other interface{}) *Expr { return e.binary(expr.OpXor, other) }
func (e *Expr) Shl(other interface{}) *Expr { return e.binary(expr.OpShl, other) }
func (e *Expr) Shr(other interface{}) *Expr { return e.binary(expr.OpShr, other) }

func (e *Expr) Neg() *Expr    { return &Expr{node: expr.Unary(e.node, expr.OpNeg)} }
func (e *Expr) Abs() *Expr    { return &Expr{node: expr.Unary(e.node, expr.OpAbs)} }
func (e *Expr) Invert() *Expr { return &Expr{node: expr.Unary(e.node, expr.OpInvert)} }

// Index defers value[key].
func (e *Expr) Index(key interface{}) *Expr {
	return &Expr{node: expr.Index(e.node, object.FromGo(key))}
}

// Attr defers an attribute access. The attribute is resolved against the
// runtime value at evaluation time, never at construction time.
func (e *Expr) Attr(name string) *Expr {
	return &Expr{node: expr.Attr(e.node, name)}
}

// Eval is the evaluation-only entry point: it applies the expression to
// input and returns the result as a plain Go value.
func (e *Expr) Eval(input interface{}) (interface{}, error) {
	result, err := expr.Evaluate(e.node, object.FromGo(input))
	if err != nil {
		return nil, wrapError(err)
	}
	return object.ToGo(result), nil
}

// CallArgs is the construction-only entry point: it captures positional
// method arguments on a terminal attribute access, with no evaluation.
func (e *Expr) CallArgs(args ...interface{}) (*Expr, error) {
	return e.CallKw(nil, args...)
}

// CallKw captures positional and keyword method arguments on a terminal
// attribute access.
func (e *Expr) CallKw(kwargs map[string]interface{}, args ...interface{}) (*Expr, error) {
	node, err := expr.Method(e.node, toObjects(args), toObjectMap(kwargs))
	if err != nil {
		return nil, wrapError(err)
	}
	return &Expr{node: node}, nil
}

// Invoke is the ambiguous call surface: whether it evaluates or constructs
// depends on the expression's terminal node. When the expression does not
// end in a bare attribute access, Invoke requires exactly one argument and
// evaluates. When it does, the attribute is resolved against the argument:
// a non-callable attribute value is returned as the evaluation result, and
// anything else captures the arguments into a deferred method call, which
// Invoke returns as a *Expr. Callers needing a deterministic interpretation
// use Eval or CallArgs instead.
func (e *Expr) Invoke(args ...interface{}) (interface{}, error) {
	return e.InvokeKw(nil, args...)
}

// InvokeKw is Invoke with keyword arguments.
func (e *Expr) InvokeKw(kwargs map[string]interface{}, args ...interface{}) (interface{}, error) {
	value, deferred, err := expr.Call(e.node, toObjects(args), toObjectMap(kwargs))
	if err != nil {
		return nil, wrapError(err)
	}
	if deferred != nil {
		return &Expr{node: deferred}, nil
	}
	return object.ToGo(value), nil
}
