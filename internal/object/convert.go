package object

import (
	"reflect"
)

// FromGo converts a Go value into an Object. Primitives, slices and
// string-keyed maps become native objects; everything else (structs,
// pointers, funcs, exotic maps) is wrapped as a Host so its members stay
// reachable through reflection.
func FromGo(val interface{}) Object {
	if val == nil {
		return NIL
	}
	if obj, ok := val.(Object); ok {
		return obj
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Integer{Value: v.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Integer{Value: int64(v.Uint())}
	case reflect.Float32, reflect.Float64:
		return &Float{Value: v.Float()}
	case reflect.Bool:
		return nativeBoolToBooleanObject(v.Bool())
	case reflect.String:
		return &String{Value: v.String()}
	case reflect.Slice, reflect.Array:
		elements := make([]Object, v.Len())
		for i := 0; i < v.Len(); i++ {
			elements[i] = FromGo(v.Index(i).Interface())
		}
		return NewList(elements)
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			fields := make(map[string]Object, v.Len())
			iter := v.MapRange()
			for iter.Next() {
				fields[iter.Key().String()] = FromGo(iter.Value().Interface())
			}
			return NewRecord(fields)
		}
		return &Host{Value: val}
	case reflect.Interface:
		if v.IsNil() {
			return NIL
		}
		return FromGo(v.Elem().Interface())
	default:
		// Structs keep their methods reachable only through reflection,
		// so they are wrapped rather than copied field by field.
		return &Host{Value: val}
	}
}

// ToGo converts an Object back into a plain Go value.
func ToGo(obj Object) interface{} {
	switch o := obj.(type) {
	case *Integer:
		return o.Value
	case *Float:
		return o.Value
	case *Boolean:
		return o.Value
	case *String:
		return o.Value
	case *Nil:
		return nil
	case *List:
		result := make([]interface{}, len(o.Elements))
		for i, el := range o.Elements {
			result[i] = ToGo(el)
		}
		return result
	case *Record:
		result := make(map[string]interface{}, len(o.Fields))
		for _, f := range o.Fields {
			result[f.Key] = ToGo(f.Value)
		}
		return result
	case *Host:
		return o.Value
	default:
		return obj
	}
}
