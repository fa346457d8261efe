package object

import "strings"

// builtinMethods maps each object type to its method table. Attribute
// access on a plain value resolves here when the value has no field of
// that name; the result is a BoundMethod carrying the receiver.
var builtinMethods = map[ObjectType]map[string]*Builtin{
	STRING_OBJ: {
		"upper": method("upper", 0, func(recv Object, args []Object) Object {
			return &String{Value: strings.ToUpper(recv.(*String).Value)}
		}),
		"lower": method("lower", 0, func(recv Object, args []Object) Object {
			return &String{Value: strings.ToLower(recv.(*String).Value)}
		}),
		"trim": method("trim", 0, func(recv Object, args []Object) Object {
			return &String{Value: strings.TrimSpace(recv.(*String).Value)}
		}),
		"len": method("len", 0, func(recv Object, args []Object) Object {
			return &Integer{Value: int64(len([]rune(recv.(*String).Value)))}
		}),
		"contains": method("contains", 1, func(recv Object, args []Object) Object {
			sub, ok := args[0].(*String)
			if !ok {
				return newError(KindUnsupported, "contains expects a string argument, got %s", args[0].Type())
			}
			return nativeBoolToBooleanObject(strings.Contains(recv.(*String).Value, sub.Value))
		}),
		"replace": method("replace", 2, func(recv Object, args []Object) Object {
			old, ok1 := args[0].(*String)
			repl, ok2 := args[1].(*String)
			if !ok1 || !ok2 {
				return newError(KindUnsupported, "replace expects string arguments")
			}
			return &String{Value: strings.ReplaceAll(recv.(*String).Value, old.Value, repl.Value)}
		}),
		"split": method("split", 1, func(recv Object, args []Object) Object {
			sep, ok := args[0].(*String)
			if !ok {
				return newError(KindUnsupported, "split expects a string argument, got %s", args[0].Type())
			}
			parts := strings.Split(recv.(*String).Value, sep.Value)
			elements := make([]Object, len(parts))
			for i, p := range parts {
				elements[i] = &String{Value: p}
			}
			return NewList(elements)
		}),
	},
	LIST_OBJ: {
		"len": method("len", 0, func(recv Object, args []Object) Object {
			return &Integer{Value: int64(recv.(*List).Len())}
		}),
		"reversed": method("reversed", 0, func(recv Object, args []Object) Object {
			return recv.(*List).Reversed()
		}),
		"sorted": method("sorted", 0, func(recv Object, args []Object) Object {
			return recv.(*List).Sorted()
		}),
		"contains": method("contains", 1, func(recv Object, args []Object) Object {
			for _, el := range recv.(*List).Elements {
				if Equal(el, args[0]) {
					return TRUE
				}
			}
			return FALSE
		}),
		"join": method("join", 1, func(recv Object, args []Object) Object {
			sep, ok := args[0].(*String)
			if !ok {
				return newError(KindUnsupported, "join expects a string argument, got %s", args[0].Type())
			}
			parts := make([]string, 0, recv.(*List).Len())
			for _, el := range recv.(*List).Elements {
				s, ok := el.(*String)
				if !ok {
					return newError(KindUnsupported, "join expects a list of strings, got %s element", el.Type())
				}
				parts = append(parts, s.Value)
			}
			return &String{Value: strings.Join(parts, sep.Value)}
		}),
	},
	RECORD_OBJ: {
		"keys": method("keys", 0, func(recv Object, args []Object) Object {
			record := recv.(*Record)
			elements := make([]Object, len(record.Fields))
			for i, f := range record.Fields {
				elements[i] = &String{Value: f.Key}
			}
			return NewList(elements)
		}),
		"has": method("has", 1, func(recv Object, args []Object) Object {
			key, ok := args[0].(*String)
			if !ok {
				return newError(KindUnsupported, "has expects a string argument, got %s", args[0].Type())
			}
			return nativeBoolToBooleanObject(recv.(*Record).Get(key.Value) != nil)
		}),
	},
}

// method wraps a receiver-first implementation with an arity check.
// arity counts arguments after the receiver.
func method(name string, arity int, fn func(recv Object, args []Object) Object) *Builtin {
	return &Builtin{
		Name: name,
		Fn: func(args ...Object) Object {
			if len(args) != arity+1 {
				return newError(KindArity, "%s expects %d arguments, got %d", name, arity, len(args)-1)
			}
			return fn(args[0], args[1:])
		},
	}
}
