package object

import (
	"strings"
	"testing"
)

func TestListIndex(t *testing.T) {
	list := NewList([]Object{
		&Integer{Value: 10},
		&Integer{Value: 20},
		&Integer{Value: 30},
	})

	if r := Index(list, &Integer{Value: 1}); r.(*Integer).Value != 20 {
		t.Errorf("list[1]: got %s", r.Inspect())
	}
	if r := Index(list, &Integer{Value: -1}); r.(*Integer).Value != 30 {
		t.Errorf("list[-1]: got %s", r.Inspect())
	}

	result := Index(list, &Integer{Value: 5})
	if err, ok := result.(*Error); !ok || err.Kind != KindIndex {
		t.Errorf("list[5] should be an index error, got %s", result.Inspect())
	}

	result = Index(list, &String{Value: "x"})
	if err, ok := result.(*Error); !ok || err.Kind != KindIndex {
		t.Errorf("string index on list should fail, got %s", result.Inspect())
	}
}

func TestStringIndex(t *testing.T) {
	s := &String{Value: "héllo"}
	if r := Index(s, &Integer{Value: 1}); r.(*String).Value != "é" {
		t.Errorf("s[1]: got %s", r.Inspect())
	}
	if r := Index(s, &Integer{Value: -1}); r.(*String).Value != "o" {
		t.Errorf("s[-1]: got %s", r.Inspect())
	}
}

func TestRecordIndexAndAttr(t *testing.T) {
	record := NewRecord(map[string]Object{
		"name": &String{Value: "ada"},
		"age":  &Integer{Value: 36},
	})

	if r := Index(record, &String{Value: "name"}); r.(*String).Value != "ada" {
		t.Errorf(`record["name"]: got %s`, r.Inspect())
	}
	if r := Attr(record, "age"); r.(*Integer).Value != 36 {
		t.Errorf("record.age: got %s", r.Inspect())
	}

	result := Attr(record, "missing")
	if err, ok := result.(*Error); !ok || err.Kind != KindAttribute {
		t.Errorf("missing field should be an attribute error, got %s", result.Inspect())
	}
}

func TestBuiltinMethods(t *testing.T) {
	upper := Attr(&String{Value: "hi"}, "upper")
	bm, ok := upper.(*BoundMethod)
	if !ok {
		t.Fatalf("expected bound method, got %s", upper.Inspect())
	}
	result := Apply(bm, nil, nil)
	if s, ok := result.(*String); !ok || s.Value != "HI" {
		t.Errorf("upper(): got %s", result.Inspect())
	}

	split := Attr(&String{Value: "a,b,c"}, "split")
	result = Apply(split, []Object{&String{Value: ","}}, nil)
	if l, ok := result.(*List); !ok || l.Len() != 3 {
		t.Errorf("split: got %s", result.Inspect())
	}

	sorted := Attr(NewList([]Object{
		&Integer{Value: 3}, &Integer{Value: 1}, &Integer{Value: 2},
	}), "sorted")
	result = Apply(sorted, nil, nil)
	if result.Inspect() != "[1, 2, 3]" {
		t.Errorf("sorted: got %s", result.Inspect())
	}

	result = Apply(Attr(&String{Value: "x"}, "upper"), []Object{&Integer{Value: 1}}, nil)
	if err, ok := result.(*Error); !ok || err.Kind != KindArity {
		t.Errorf("upper(1) should be an arity error, got %s", result.Inspect())
	}
}

type hostThing struct {
	N    int
	Name string
}

func (h hostThing) Double(x int) int { return x * 2 }

func (h hostThing) Greet() string { return "hello " + h.Name }

func TestHostAttr(t *testing.T) {
	h := &Host{Value: hostThing{N: 7, Name: "ada"}}

	if r := HostAttr(h, "N"); r.(*Integer).Value != 7 {
		t.Errorf("field N: got %s", r.Inspect())
	}

	method := HostAttr(h, "Greet")
	if !IsCallable(method) {
		t.Fatalf("expected callable for method, got %s", method.Inspect())
	}
	result := Apply(method, nil, nil)
	if s, ok := result.(*String); !ok || s.Value != "hello ada" {
		t.Errorf("Greet(): got %s", result.Inspect())
	}

	double := HostAttr(h, "Double")
	result = Apply(double, []Object{&Integer{Value: 21}}, nil)
	if i, ok := result.(*Integer); !ok || i.Value != 42 {
		t.Errorf("Double(21): got %s", result.Inspect())
	}

	missing := HostAttr(h, "Nope")
	if err, ok := missing.(*Error); !ok || err.Kind != KindAttribute {
		t.Errorf("missing member should be an attribute error, got %s", missing.Inspect())
	}
}

func TestHostIndex(t *testing.T) {
	m := &Host{Value: map[int]string{1: "one"}}
	if r := HostIndex(m, &Integer{Value: 1}); r.(*String).Value != "one" {
		t.Errorf("map[1]: got %s", r.Inspect())
	}
	if r := HostIndex(m, &Integer{Value: 9}); r != NIL {
		t.Errorf("missing map key should be Nil, got %s", r.Inspect())
	}
}

func TestApplyHostFunc(t *testing.T) {
	fn := &Host{Value: func(s string) string { return strings.ToUpper(s) }}
	if !IsCallable(fn) {
		t.Fatalf("func host should be callable")
	}
	result := Apply(fn, []Object{&String{Value: "ok"}}, nil)
	if s, ok := result.(*String); !ok || s.Value != "OK" {
		t.Errorf("host func: got %s", result.Inspect())
	}

	result = Apply(fn, nil, nil)
	if err, ok := result.(*Error); !ok || err.Kind != KindArity {
		t.Errorf("wrong arity should fail, got %s", result.Inspect())
	}
}

func TestApplyRejectsKwargs(t *testing.T) {
	fn := &Builtin{Name: "id", Fn: func(args ...Object) Object { return args[0] }}
	result := Apply(fn, []Object{NIL}, map[string]Object{"k": NIL})
	if err, ok := result.(*Error); !ok || err.Kind != KindUnsupported {
		t.Errorf("kwargs should be rejected, got %s", result.Inspect())
	}
}

func TestFromGoToGo(t *testing.T) {
	obj := FromGo(map[string]interface{}{
		"items": []interface{}{1, 2.5, "x", true, nil},
	})
	record, ok := obj.(*Record)
	if !ok {
		t.Fatalf("expected record, got %s", obj.Inspect())
	}
	items, ok := record.Get("items").(*List)
	if !ok || items.Len() != 5 {
		t.Fatalf("expected 5-element list, got %s", record.Inspect())
	}

	back := ToGo(obj).(map[string]interface{})
	list := back["items"].([]interface{})
	if list[0] != int64(1) || list[1] != 2.5 || list[2] != "x" || list[3] != true || list[4] != nil {
		t.Errorf("round trip mismatch: %v", list)
	}
}
