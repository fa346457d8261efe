package expr

import "github.com/funvibe/underscore/internal/object"

// Evaluate applies the chain to input, threading the result of each node
// into the next. The first failing step aborts; the expression itself is
// never modified by evaluation.
func Evaluate(e *Node, input object.Object) (object.Object, error) {
	result := input
	for n := e; n != nil; n = n.Next {
		r := apply(n, result)
		if object.IsError(r) {
			return nil, r.(*object.Error)
		}
		result = r
	}
	return result, nil
}

// apply executes a single node against the accumulator value. All operator,
// attribute and call semantics belong to the value's own protocol in the
// object package; nothing here coerces types.
func apply(n *Node, value object.Object) object.Object {
	if n.Left != nil {
		// Multi-reference: both branches receive the same input.
		left, err := Evaluate(n.Left, value)
		if err != nil {
			return err.(*object.Error)
		}
		right, err := Evaluate(n.Right, value)
		if err != nil {
			return err.(*object.Error)
		}
		return object.Binary(n.Op.token(), left, right)
	}

	switch n.Op {
	case OpIdentity:
		return value
	case OpNeg:
		return object.Prefix("-", value)
	case OpAbs:
		return object.Prefix("abs", value)
	case OpInvert:
		return object.Prefix("~", value)
	case OpGetItem:
		return object.Index(value, n.Operand)
	case OpGetAttr:
		return object.Attr(value, n.Name)
	case OpMethodCall:
		fn := object.Attr(value, n.Name)
		if object.IsError(fn) {
			return fn
		}
		return object.Apply(fn, n.Args, n.Kwargs)
	case OpPipe:
		if n.Sub != nil {
			result, err := Evaluate(n.Sub, value)
			if err != nil {
				return err.(*object.Error)
			}
			return result
		}
		return object.Apply(n.Operand, []object.Object{value}, nil)
	default:
		return object.Binary(n.Op.token(), value, n.Operand)
	}
}
