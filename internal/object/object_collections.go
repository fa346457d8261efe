package object

import (
	"sort"
	"strings"
)

// List is an immutable sequence of objects. Mutating helpers return new lists.
type List struct {
	Elements []Object
}

func NewList(elements []Object) *List {
	return &List{Elements: elements}
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, el := range l.Elements {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *List) Hash() uint32 {
	var h uint32 = 2166136261
	for _, el := range l.Elements {
		h = h*16777619 ^ el.Hash()
	}
	return h
}

func (l *List) Len() int { return len(l.Elements) }

func (l *List) Get(i int) Object { return l.Elements[i] }

// Concat returns a new list; neither receiver nor argument is modified.
func (l *List) Concat(other *List) *List {
	elements := make([]Object, 0, len(l.Elements)+len(other.Elements))
	elements = append(elements, l.Elements...)
	elements = append(elements, other.Elements...)
	return NewList(elements)
}

func (l *List) Reversed() *List {
	elements := make([]Object, len(l.Elements))
	for i, el := range l.Elements {
		elements[len(elements)-1-i] = el
	}
	return NewList(elements)
}

func (l *List) Sorted() *List {
	elements := make([]Object, len(l.Elements))
	copy(elements, l.Elements)
	sort.SliceStable(elements, func(i, j int) bool {
		return compareObjects(elements[i], elements[j]) < 0
	})
	return NewList(elements)
}

// Record is a string-keyed value with stable field order.
type Record struct {
	Fields []RecordField
	index  map[string]int
}

type RecordField struct {
	Key   string
	Value Object
}

func NewRecord(fields map[string]Object) *Record {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := &Record{index: make(map[string]int, len(fields))}
	for _, k := range keys {
		r.index[k] = len(r.Fields)
		r.Fields = append(r.Fields, RecordField{Key: k, Value: fields[k]})
	}
	return r
}

// NewRecordOrdered keeps the caller's field order (e.g. SQL column order).
func NewRecordOrdered(keys []string, values []Object) *Record {
	r := &Record{index: make(map[string]int, len(keys))}
	for i, k := range keys {
		r.index[k] = len(r.Fields)
		r.Fields = append(r.Fields, RecordField{Key: k, Value: values[i]})
	}
	return r
}

func (r *Record) Type() ObjectType { return RECORD_OBJ }
func (r *Record) Inspect() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Key + ": " + f.Value.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (r *Record) Hash() uint32 {
	var h uint32 = 2166136261
	for _, f := range r.Fields {
		h = h*16777619 ^ hashString(f.Key)
		h = h*16777619 ^ f.Value.Hash()
	}
	return h
}

// Get returns nil when the field is absent.
func (r *Record) Get(name string) Object {
	if i, ok := r.index[name]; ok {
		return r.Fields[i].Value
	}
	return nil
}
