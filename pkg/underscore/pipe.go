package underscore

import (
	"github.com/funvibe/underscore/internal/expr"
	"github.com/funvibe/underscore/internal/object"
)

// Pipe is the three-way composition operator. The right operand is
// classified at dispatch time, never inside a node:
//
//   - another expression: composition, always — even the bare placeholder
//   - any other invokable value (a Go function, a bound method): composition
//   - concrete data: immediate forward-pipe evaluation
//
// The first two return *Expr; the last returns the evaluated value.
func (e *Expr) Pipe(right interface{}) (interface{}, error) {
	if o, ok := right.(*Expr); ok {
		return &Expr{node: expr.Compose(e.node, o.node)}, nil
	}

	obj := object.FromGo(right)
	if object.IsCallable(obj) {
		return &Expr{node: expr.ComposeCallable(e.node, obj)}, nil
	}

	result, err := expr.Evaluate(e.node, obj)
	if err != nil {
		return nil, wrapError(err)
	}
	return object.ToGo(result), nil
}

// Compose is the composition-only form of Pipe for two expressions.
func (e *Expr) Compose(right *Expr) *Expr {
	return &Expr{node: expr.Compose(e.node, right.node)}
}

// Pipe is the symmetric package-level operator: a concrete value on the
// left combined with an expression on the right evaluates immediately
// (reverse pipe). An expression on the left defers to its Pipe method.
func Pipe(left, right interface{}) (interface{}, error) {
	if l, ok := left.(*Expr); ok {
		return l.Pipe(right)
	}
	r, ok := right.(*Expr)
	if !ok {
		return nil, wrapError(object.NewError(object.KindUnsupported,
			"pipe requires an expression on at least one side"))
	}
	result, err := expr.Evaluate(r.node, object.FromGo(left))
	if err != nil {
		return nil, wrapError(err)
	}
	return object.ToGo(result), nil
}
