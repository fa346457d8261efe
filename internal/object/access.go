package object

import "reflect"

// Index resolves value[key] through the value's own protocol.
func Index(left, index Object) Object {
	switch obj := left.(type) {
	case *List:
		idx, ok := index.(*Integer)
		if !ok {
			return newError(KindIndex, "index must be integer, got %s", index.Type())
		}
		i := int(idx.Value)
		max := obj.Len()
		if i < 0 {
			i = max + i
		}
		if i < 0 || i >= max {
			return newError(KindIndex, "index out of bounds")
		}
		return obj.Get(i)

	case *String:
		idx, ok := index.(*Integer)
		if !ok {
			return newError(KindIndex, "index must be integer, got %s", index.Type())
		}
		runes := []rune(obj.Value)
		i := int(idx.Value)
		if i < 0 {
			i = len(runes) + i
		}
		if i < 0 || i >= len(runes) {
			return newError(KindIndex, "index out of bounds")
		}
		return &String{Value: string(runes[i])}

	case *Record:
		key, ok := index.(*String)
		if !ok {
			return newError(KindIndex, "record key must be string, got %s", index.Type())
		}
		if val := obj.Get(key.Value); val != nil {
			return val
		}
		return newError(KindIndex, "key '%s' not found", key.Value)

	case *Host:
		return HostIndex(obj, index)

	default:
		return newError(KindIndex, "index operator not supported: %s", left.Type())
	}
}

// Attr resolves a named attribute on a value: record fields first, host
// members through reflection, then the per-type builtin method tables.
func Attr(value Object, name string) Object {
	if record, ok := value.(*Record); ok {
		if val := record.Get(name); val != nil {
			return val
		}
	}

	if host, ok := value.(*Host); ok {
		return HostAttr(host, name)
	}

	if methods, ok := builtinMethods[value.Type()]; ok {
		if method, ok := methods[name]; ok {
			return &BoundMethod{Receiver: value, Method: method}
		}
	}

	return newError(KindAttribute, "attribute '%s' not found on %s", name, value.Type())
}

// Apply invokes a callable object with positional arguments. Keyword
// arguments are part of the node model but no callable here accepts them.
func Apply(fn Object, args []Object, kwargs map[string]Object) Object {
	if len(kwargs) > 0 {
		return newError(KindUnsupported, "keyword arguments not supported by %s", fn.Type())
	}

	switch f := fn.(type) {
	case *Builtin:
		return f.Fn(args...)
	case *BoundMethod:
		full := make([]Object, 0, len(args)+1)
		full = append(full, f.Receiver)
		full = append(full, args...)
		return f.Method.Fn(full...)
	case *Host:
		if f.isFunc() {
			return callReflected(reflect.ValueOf(f.Value), args)
		}
		return newError(KindUnsupported, "not callable: %s", fn.Inspect())
	default:
		return newError(KindUnsupported, "not callable: %s", fn.Type())
	}
}
