package expr

import "github.com/funvibe/underscore/internal/object"

// extend attaches tail to a copy of self. The bare identity placeholder
// collapses into the new node; anything else gets a full chain clone with
// tail linked after the copied terminal. self is never modified.
func (n *Node) extend(tail *Node) *Node {
	if n.isBareIdentity() {
		return tail
	}
	head := n.clone()
	head.terminal().Next = tail
	return head
}

// Combine builds a new expression representing "n, then op against operand".
// The operand is a constant; when both sides of an operator are themselves
// placeholder-derived expressions the caller routes to MultiRef instead.
func Combine(n *Node, operand object.Object, op Op) *Node {
	return n.extend(&Node{Op: op, Operand: operand})
}

// MultiRef builds a node applying op to two evaluations of the same input:
// evaluate(left, x) op evaluate(right, x). Both branches are deep clones.
func MultiRef(left, right *Node, op Op) *Node {
	return &Node{Op: op, Left: left.clone(), Right: right.clone()}
}

// Attr appends an attribute-access node. Never ambiguous by itself; the
// ambiguity arises only when the resulting expression is invoked.
func Attr(n *Node, name string) *Node {
	return n.extend(&Node{Op: OpGetAttr, Name: name})
}

// Index appends an indexing node.
func Index(n *Node, key object.Object) *Node {
	return n.extend(&Node{Op: OpGetItem, Operand: key})
}

// Unary appends a unary node (OpNeg, OpAbs, OpInvert).
func Unary(n *Node, op Op) *Node {
	return n.extend(&Node{Op: op})
}

// Method converts a terminal attribute-access node into a method call
// carrying the supplied arguments, on a fresh clone of the chain. A nil
// args slice is stored as empty: after Method the node always counts as
// invoked, even with zero arguments.
func Method(n *Node, args []object.Object, kwargs map[string]object.Object) (*Node, error) {
	t := n.terminal()
	if t.Op != OpGetAttr || t.Args != nil {
		return nil, object.NewError(object.KindUnsupported,
			"cannot capture method arguments: expression does not end in an attribute access")
	}
	head := n.clone()
	ht := head.terminal()
	ht.Op = OpMethodCall
	ht.Args = make([]object.Object, len(args))
	copy(ht.Args, args)
	if len(kwargs) > 0 {
		ht.Kwargs = make(map[string]object.Object, len(kwargs))
		for k, v := range kwargs {
			ht.Kwargs[k] = v
		}
	}
	return head, nil
}

// Compose sequences two expressions: the right expression is evaluated with
// the left expression's result as its input. Composition always wins when
// the right side is an expression, even the bare identity placeholder.
func Compose(left, right *Node) *Node {
	return left.extend(&Node{Op: OpPipe, Sub: right.clone()})
}

// ComposeCallable sequences an expression with an external callable value.
func ComposeCallable(left *Node, fn object.Object) *Node {
	return left.extend(&Node{Op: OpPipe, Operand: fn})
}
