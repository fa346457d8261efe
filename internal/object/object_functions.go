package object

// BuiltinFunction is the signature of native functions exposed to expressions.
type BuiltinFunction func(args ...Object) Object

// Builtin wraps a native Go function.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin: " + b.Name }
func (b *Builtin) Hash() uint32     { return hashString(b.Name) }

// BoundMethod is a builtin bound to a receiver, produced by attribute access.
type BoundMethod struct {
	Receiver Object
	Method   *Builtin
}

func (bm *BoundMethod) Type() ObjectType { return BOUND_METHOD_OBJ }
func (bm *BoundMethod) Inspect() string  { return "bound method: " + bm.Method.Name }
func (bm *BoundMethod) Hash() uint32 {
	return bm.Receiver.Hash() ^ bm.Method.Hash()
}

// IsCallable reports whether Apply can invoke obj.
func IsCallable(obj Object) bool {
	switch o := obj.(type) {
	case *Builtin, *BoundMethod:
		return true
	case *Host:
		return o.isFunc()
	}
	return false
}
