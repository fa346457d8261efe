package expr

import "github.com/funvibe/underscore/internal/object"

// clone copies the entire chain: every node, recursively through Sub, Left
// and Right as well as Next. Operand objects are immutable and shared, but
// Args slices and Kwargs maps are copied per node so no container is ever
// reachable from two independently returned expressions.
//
// Cloning only the head while reusing the existing Next pointer would let a
// later extension of one derived expression become visible through another
// one; the whole-chain copy here is what the non-aliasing contract rests on.
func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Op:      n.Op,
		Operand: n.Operand,
		Name:    n.Name,
		Sub:     n.Sub.clone(),
		Left:    n.Left.clone(),
		Right:   n.Right.clone(),
		Next:    n.Next.clone(),
	}
	if n.Args != nil {
		c.Args = make([]object.Object, len(n.Args))
		copy(c.Args, n.Args)
	}
	if n.Kwargs != nil {
		c.Kwargs = make(map[string]object.Object, len(n.Kwargs))
		for k, v := range n.Kwargs {
			c.Kwargs[k] = v
		}
	}
	return c
}
