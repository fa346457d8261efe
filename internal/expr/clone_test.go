package expr

import (
	"testing"

	"github.com/funvibe/underscore/internal/object"
)

// Regression for the aliasing defect: extending a chain must never become
// observable through a previously derived expression. The original bug was
// a head-only copy that reused the existing tail pointer.
func TestDerivedChainsDoNotAlias(t *testing.T) {
	e1 := Combine(Identity(), &object.Integer{Value: 1}, OpAdd)
	e2 := Combine(e1, &object.Integer{Value: 2}, OpMul)

	if got := evalInt(t, e2, 5); got != 12 {
		t.Fatalf("(_ + 1) * 2 with 5: expected 12, got %d", got)
	}

	e3 := Combine(e1, &object.Integer{Value: 3}, OpAdd)

	if got := evalInt(t, e2, 5); got != 12 {
		t.Errorf("e2 changed after deriving e3: expected 12, got %d", got)
	}
	if got := evalInt(t, e3, 5); got != 9 {
		t.Errorf("(_ + 1) + 3 with 5: expected 9, got %d", got)
	}
	if got := evalInt(t, e1, 5); got != 6 {
		t.Errorf("e1 changed by derivations: expected 6, got %d", got)
	}
}

func TestLongChainIsolation(t *testing.T) {
	base := Combine(Identity(), &object.Integer{Value: 1}, OpAdd)
	for i := 0; i < 5; i++ {
		base = Combine(base, &object.Integer{Value: 1}, OpAdd)
	}
	// base is now _ + 1 (x6)

	derived := make([]*Node, 4)
	for i := range derived {
		derived[i] = Combine(base, &object.Integer{Value: int64(i * 10)}, OpAdd)
	}

	for i, d := range derived {
		expected := int64(6 + i*10)
		if got := evalInt(t, d, 0); got != expected {
			t.Errorf("derived[%d]: expected %d, got %d", i, expected, got)
		}
	}
	if got := evalInt(t, base, 0); got != 6 {
		t.Errorf("base: expected 6, got %d", got)
	}
}

func TestMultiRefBranchesAreIsolated(t *testing.T) {
	inner := Combine(Identity(), &object.Integer{Value: 1}, OpAdd)
	mr := MultiRef(inner, inner, OpMul)

	// Extending the original branch expression must not reach into the
	// clones held by the multi-reference node.
	_ = Combine(inner, &object.Integer{Value: 100}, OpAdd)

	if got := evalInt(t, mr, 2); got != 9 {
		t.Errorf("(_ + 1) * (_ + 1) with 2: expected 9, got %d", got)
	}
}

func TestComposeIsolatesBothSides(t *testing.T) {
	left := Combine(Identity(), &object.Integer{Value: 1}, OpAdd)
	right := Combine(Identity(), &object.Integer{Value: 2}, OpMul)
	composed := Compose(left, right)

	if got := evalInt(t, composed, 5); got != 12 {
		t.Fatalf("(_ + 1) >> (_ * 2) with 5: expected 12, got %d", got)
	}

	_ = Combine(left, &object.Integer{Value: 7}, OpAdd)
	_ = Combine(right, &object.Integer{Value: 7}, OpAdd)

	if got := evalInt(t, composed, 5); got != 12 {
		t.Errorf("composition changed after extending its sources: expected 12, got %d", got)
	}
}

func TestMethodArgumentsAreCopied(t *testing.T) {
	args := []object.Object{&object.String{Value: ","}}
	e, err := Method(Attr(Identity(), "split"), args, nil)
	if err != nil {
		t.Fatalf("method construction: %v", err)
	}

	// Mutating the caller's slice must not affect the captured node.
	args[0] = &object.String{Value: ";"}

	result := mustEval(t, e, &object.String{Value: "a,b"})
	if result.(*object.List).Len() != 2 {
		t.Errorf("captured argument changed: got %s", result.Inspect())
	}
}

func TestZeroArgCallDistinctFromUninvoked(t *testing.T) {
	attr := Attr(Identity(), "upper")
	if attr.terminal().Args != nil {
		t.Fatalf("bare attribute access should have unset args")
	}

	called, err := Method(attr, nil, nil)
	if err != nil {
		t.Fatalf("method construction: %v", err)
	}
	if called.terminal().Args == nil {
		t.Errorf("zero-argument call should have empty, not unset, args")
	}
	if attr.terminal().Args != nil {
		t.Errorf("constructing the call modified the source expression")
	}
}
