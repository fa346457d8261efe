package object

import (
	"fmt"
	"reflect"
)

// Host wraps an arbitrary Go value. Fields, methods, map keys and slice
// indices are reached through reflection, so any Go value can participate
// in attribute access, indexing and method calls.
type Host struct {
	Value interface{}
}

func (h *Host) Type() ObjectType { return HOST_OBJ }

func (h *Host) Inspect() string {
	return fmt.Sprintf("<host: %T %+v>", h.Value, h.Value)
}

func (h *Host) Hash() uint32 {
	if h.Value == nil {
		return 0
	}
	val := reflect.ValueOf(h.Value)
	switch val.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return uint32(val.Pointer())
	default:
		return hashString(fmt.Sprintf("%v", h.Value))
	}
}

func (h *Host) isFunc() bool {
	if h.Value == nil {
		return false
	}
	return reflect.ValueOf(h.Value).Kind() == reflect.Func
}

// HostAttr resolves a field or method on a Host value. Methods win over
// fields, matching Go's own selector shadowing rules for promoted names.
func HostAttr(h *Host, name string) Object {
	if h.Value == nil {
		return newError(KindAttribute, "attribute '%s' not found on nil host value", name)
	}
	val := reflect.ValueOf(h.Value)

	if method := val.MethodByName(name); method.IsValid() {
		return &Builtin{
			Name: name,
			Fn: func(args ...Object) Object {
				return callReflected(method, args)
			},
		}
	}

	indirect := val
	if indirect.Kind() == reflect.Ptr {
		if indirect.IsNil() {
			return newError(KindAttribute, "attribute '%s' not found on nil host value", name)
		}
		indirect = indirect.Elem()
	}
	if indirect.Kind() == reflect.Struct {
		if field := indirect.FieldByName(name); field.IsValid() && field.CanInterface() {
			return FromGo(field.Interface())
		}
	}

	return newError(KindAttribute, "attribute '%s' not found on %T", name, h.Value)
}

// HostIndex indexes a wrapped Go map or slice/array.
func HostIndex(h *Host, key Object) Object {
	val := reflect.ValueOf(h.Value)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Map:
		kv, err := toReflectValue(key, val.Type().Key())
		if err != nil {
			return newError(KindIndex, "map key: %v", err)
		}
		entry := val.MapIndex(kv)
		if !entry.IsValid() {
			return NIL
		}
		return FromGo(entry.Interface())
	case reflect.Slice, reflect.Array, reflect.String:
		idx, ok := key.(*Integer)
		if !ok {
			return newError(KindIndex, "index must be integer, got %s", key.Type())
		}
		i := int(idx.Value)
		if i < 0 {
			i = val.Len() + i
		}
		if i < 0 || i >= val.Len() {
			return newError(KindIndex, "index out of bounds")
		}
		if val.Kind() == reflect.String {
			return &String{Value: string(val.Index(i).Interface().(byte))}
		}
		return FromGo(val.Index(i).Interface())
	default:
		return newError(KindIndex, "index operator not supported: %T", h.Value)
	}
}

// callReflected invokes a reflected function, converting arguments in and
// the result out. A panic inside the host function becomes a runtime Error.
func callReflected(fn reflect.Value, args []Object) (result Object) {
	defer func() {
		if r := recover(); r != nil {
			result = newError(KindRuntime, "host call panic: %v", r)
		}
	}()

	t := fn.Type()
	if !t.IsVariadic() && t.NumIn() != len(args) {
		return newError(KindArity, "host function expects %d arguments, got %d", t.NumIn(), len(args))
	}
	if t.IsVariadic() && len(args) < t.NumIn()-1 {
		return newError(KindArity, "host function expects at least %d arguments, got %d", t.NumIn()-1, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if t.IsVariadic() && i >= t.NumIn()-1 {
			want = t.In(t.NumIn() - 1).Elem()
		} else {
			want = t.In(i)
		}
		rv, err := toReflectValue(arg, want)
		if err != nil {
			return newError(KindRuntime, "argument %d: %v", i, err)
		}
		in[i] = rv
	}

	out := fn.Call(in)
	switch len(out) {
	case 0:
		return NIL
	case 1:
		return FromGo(out[0].Interface())
	default:
		// Trailing error return follows the usual Go convention.
		if last := out[len(out)-1]; last.Type().Implements(errType) {
			if !last.IsNil() {
				return newError(KindRuntime, "host call: %v", last.Interface())
			}
			out = out[:len(out)-1]
		}
		if len(out) == 1 {
			return FromGo(out[0].Interface())
		}
		elements := make([]Object, len(out))
		for i, o := range out {
			elements[i] = FromGo(o.Interface())
		}
		return NewList(elements)
	}
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func toReflectValue(obj Object, want reflect.Type) (reflect.Value, error) {
	goVal := ToGo(obj)
	if goVal == nil {
		return reflect.Zero(want), nil
	}
	rv := reflect.ValueOf(goVal)
	if rv.Type().AssignableTo(want) {
		return rv, nil
	}
	if rv.Type().ConvertibleTo(want) {
		return rv.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", rv.Type(), want)
}
