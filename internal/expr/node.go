package expr

import (
	"sort"
	"strings"

	"github.com/funvibe/underscore/internal/object"
)

// Op is the closed set of deferred operations a node can carry.
type Op int

const (
	OpIdentity Op = iota
	// Binary arithmetic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod
	// Comparison
	OpGt
	OpLt
	OpEq
	OpNe
	OpGe
	OpLe
	// Bitwise
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
	// Unary
	OpNeg
	OpAbs
	OpInvert
	// Other
	OpGetItem
	OpGetAttr
	OpMethodCall
	OpPipe
)

var opTokens = map[Op]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpPow: "**", OpMod: "%",
	OpGt: ">", OpLt: "<", OpEq: "==", OpNe: "!=", OpGe: ">=", OpLe: "<=",
	OpAnd: "&", OpOr: "|", OpXor: "^", OpShl: "<<", OpShr: ">>",
}

// token returns the operator string the object protocol dispatches on.
func (op Op) token() string { return opTokens[op] }

// IsBinary reports whether op applies an infix operator to an operand.
func (op Op) IsBinary() bool {
	_, ok := opTokens[op]
	return ok
}

// IsUnary reports whether op takes no operand.
func (op Op) IsUnary() bool {
	return op == OpNeg || op == OpAbs || op == OpInvert
}

// Node is one deferred operation. A chain of nodes linked through Next is
// applied left to right to a threaded accumulator value.
//
// Exactly one operand shape is populated:
//   - Operand: constant for binary/getitem nodes, captured callable for pipe
//   - Name (+Args/Kwargs): attribute or method-call nodes
//   - Sub: sub-expression for pipe nodes
//   - Left/Right: multi-reference nodes (both branches placeholder-derived)
//
// Args == nil means "attribute accessed but not yet invoked as a call";
// a call with zero arguments stores a non-nil empty slice. Nodes are never
// mutated once returned from a construction call: every extension clones
// the full chain first (see clone.go), which is what keeps independently
// derived expressions from aliasing each other's tails.
type Node struct {
	Op      Op
	Operand object.Object
	Name    string
	Sub     *Node
	Left    *Node
	Right   *Node
	Args    []object.Object
	Kwargs  map[string]object.Object
	Next    *Node
}

// Identity returns the bare placeholder expression.
func Identity() *Node {
	return &Node{Op: OpIdentity}
}

// isBareIdentity reports whether n is the zero-operation placeholder.
func (n *Node) isBareIdentity() bool {
	return n.Op == OpIdentity && n.Next == nil && n.Left == nil
}

// terminal returns the last node in the chain.
func (n *Node) terminal() *Node {
	t := n
	for t.Next != nil {
		t = t.Next
	}
	return t
}

// String renders the expression the way it was written, with `_` standing
// for the placeholder, e.g. "((_ + 1) >> (_ * 2))". A deferred right shift
// shares the ">>" spelling with composition: "(_ >> 2)" is a shift, while a
// pipe's right side always renders as a sub-expression or a callable.
func (n *Node) String() string {
	acc := "_"
	for node := n; node != nil; node = node.Next {
		acc = node.render(acc)
	}
	return acc
}

func (n *Node) render(acc string) string {
	if n.Left != nil {
		return "(" + n.Left.String() + " " + n.Op.token() + " " + n.Right.String() + ")"
	}

	switch n.Op {
	case OpIdentity:
		return acc
	case OpNeg:
		return "(-" + acc + ")"
	case OpAbs:
		return "abs(" + acc + ")"
	case OpInvert:
		return "(~" + acc + ")"
	case OpGetItem:
		return acc + "[" + n.Operand.Inspect() + "]"
	case OpGetAttr:
		return acc + "." + n.Name
	case OpMethodCall:
		parts := make([]string, 0, len(n.Args)+len(n.Kwargs))
		for _, a := range n.Args {
			parts = append(parts, a.Inspect())
		}
		for _, k := range sortedKeys(n.Kwargs) {
			parts = append(parts, k+"="+n.Kwargs[k].Inspect())
		}
		return acc + "." + n.Name + "(" + strings.Join(parts, ", ") + ")"
	case OpPipe:
		if n.Sub != nil {
			return "(" + acc + " >> " + n.Sub.String() + ")"
		}
		return "(" + acc + " >> " + n.Operand.Inspect() + ")"
	default:
		return "(" + acc + " " + n.Op.token() + " " + n.Operand.Inspect() + ")"
	}
}

func sortedKeys(m map[string]object.Object) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
