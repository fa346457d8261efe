package underscore

import "github.com/funvibe/underscore/internal/object"

// Conversion between Go values and engine objects. Primitives, slices and
// string-keyed maps map to native objects; structs, pointers and functions
// are wrapped so their members stay reachable through reflection.

func toObjects(args []interface{}) []object.Object {
	objs := make([]object.Object, len(args))
	for i, a := range args {
		objs[i] = object.FromGo(a)
	}
	return objs
}

func toObjectMap(kwargs map[string]interface{}) map[string]object.Object {
	if len(kwargs) == 0 {
		return nil
	}
	objs := make(map[string]object.Object, len(kwargs))
	for k, v := range kwargs {
		objs[k] = object.FromGo(v)
	}
	return objs
}
