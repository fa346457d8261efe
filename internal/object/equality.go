package object

import "reflect"

// Equal reports structural equality between two objects.
func Equal(left, right Object) bool {
	// Implicit Int -> Float conversion for equality
	if li, ok := left.(*Integer); ok {
		if rf, ok := right.(*Float); ok {
			return float64(li.Value) == rf.Value
		}
	}
	if lf, ok := left.(*Float); ok {
		if ri, ok := right.(*Integer); ok {
			return lf.Value == float64(ri.Value)
		}
	}

	switch l := left.(type) {
	case *Integer:
		r, ok := right.(*Integer)
		return ok && l.Value == r.Value
	case *Float:
		r, ok := right.(*Float)
		return ok && l.Value == r.Value
	case *Boolean:
		r, ok := right.(*Boolean)
		return ok && l.Value == r.Value
	case *String:
		r, ok := right.(*String)
		return ok && l.Value == r.Value
	case *Nil:
		_, ok := right.(*Nil)
		return ok
	case *List:
		r, ok := right.(*List)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !Equal(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	case *Record:
		r, ok := right.(*Record)
		if !ok || len(l.Fields) != len(r.Fields) {
			return false
		}
		for _, f := range l.Fields {
			other := r.Get(f.Key)
			if other == nil || !Equal(f.Value, other) {
				return false
			}
		}
		return true
	case *Host:
		r, ok := right.(*Host)
		if !ok {
			return false
		}
		if l.Value == nil || r.Value == nil {
			return l.Value == nil && r.Value == nil
		}
		// Funcs, slices and non-string-key maps are not comparable; an
		// unguarded == would panic.
		if !reflect.TypeOf(l.Value).Comparable() || !reflect.TypeOf(r.Value).Comparable() {
			return false
		}
		return l.Value == r.Value
	default:
		return left == right
	}
}

// compareObjects orders two objects: -1 if left < right, 0 if equal, 1 if
// left > right. Mismatched types fall back to Inspect ordering.
func compareObjects(left, right Object) int {
	if li, ok := left.(*Integer); ok {
		if ri, ok := right.(*Integer); ok {
			switch {
			case li.Value < ri.Value:
				return -1
			case li.Value > ri.Value:
				return 1
			}
			return 0
		}
	}
	if lf, ok := left.(*Float); ok {
		if rf, ok := right.(*Float); ok {
			switch {
			case lf.Value < rf.Value:
				return -1
			case lf.Value > rf.Value:
				return 1
			}
			return 0
		}
	}
	if ls, ok := left.(*String); ok {
		if rs, ok := right.(*String); ok {
			switch {
			case ls.Value < rs.Value:
				return -1
			case ls.Value > rs.Value:
				return 1
			}
			return 0
		}
	}
	if ll, ok := left.(*List); ok {
		if rl, ok := right.(*List); ok {
			minLen := len(ll.Elements)
			if len(rl.Elements) < minLen {
				minLen = len(rl.Elements)
			}
			for i := 0; i < minLen; i++ {
				if cmp := compareObjects(ll.Elements[i], rl.Elements[i]); cmp != 0 {
					return cmp
				}
			}
			switch {
			case len(ll.Elements) < len(rl.Elements):
				return -1
			case len(ll.Elements) > len(rl.Elements):
				return 1
			}
			return 0
		}
	}

	switch {
	case left.Inspect() < right.Inspect():
		return -1
	case left.Inspect() > right.Inspect():
		return 1
	}
	return 0
}
