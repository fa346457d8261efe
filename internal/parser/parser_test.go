package parser

import (
	"strings"
	"testing"

	"github.com/funvibe/underscore/internal/expr"
	"github.com/funvibe/underscore/internal/object"
)

func parseEval(t *testing.T, input string, in object.Object) object.Object {
	t.Helper()
	node, err := Parse(input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	result, err := expr.Evaluate(node, in)
	if err != nil {
		t.Fatalf("evaluate %q: %v", input, err)
	}
	return result
}

func evalInt(t *testing.T, input string, in int64) int64 {
	t.Helper()
	result := parseEval(t, input, &object.Integer{Value: in})
	i, ok := result.(*object.Integer)
	if !ok {
		t.Fatalf("%q: expected Integer, got %s", input, result.Inspect())
	}
	return i.Value
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		in       int64
		expected int64
	}{
		{"_", 7, 7},
		{"_ + 1", 5, 6},
		{"_ * 2 + 1", 5, 11},
		{"_ + 2 * 3", 1, 7},
		{"(_ + 2) * 3", 1, 9},
		{"_ % 10 ** 2", 17, 17}, // ** binds tighter: _ % 100
		{"(_ % 10) ** 2", 17, 49},
		{"_ ** 3 ** 2", 2, 512}, // right-associative: _ ** 9
		{"_ - 10", 3, -7},
		{"abs(_ - 10)", 3, 7},
		{"-_", 9, -9},
		{"~_", 0, -1},
		{"_ << 3", 1, 8},
		{"_ & 10", 12, 8},
		{"_ | 10", 12, 14},
		{"_ ^ 10", 12, 6},
		{"2 + _", 5, 7},
		{"2 * _ + 1", 5, 11},
		{"_ + _", 5, 10},
		{"(_ + 1) * (_ - 1)", 5, 24},
		{"1 + 2 * _", 5, 11},
	}

	for _, tt := range tests {
		if got := evalInt(t, tt.input, tt.in); got != tt.expected {
			t.Errorf("%q with %d: expected %d, got %d", tt.input, tt.in, tt.expected, got)
		}
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		input    string
		in       int64
		expected bool
	}{
		{"_ > 3", 5, true},
		{"_ <= 3", 5, false},
		{"_ == 5", 5, true},
		{"5 == _", 5, true},
		{"_ != 5", 5, false},
	}

	for _, tt := range tests {
		result := parseEval(t, tt.input, &object.Integer{Value: tt.in})
		b, ok := result.(*object.Boolean)
		if !ok || b.Value != tt.expected {
			t.Errorf("%q with %d: expected %t, got %s", tt.input, tt.in, tt.expected, result.Inspect())
		}
	}
}

func TestPipes(t *testing.T) {
	if got := evalInt(t, "(_ + 1) >> (_ * 2)", 5); got != 12 {
		t.Errorf("expected 12, got %d", got)
	}
	if got := evalInt(t, "_ + 1 >> _ * 2", 5); got != 12 {
		t.Errorf("pipe should bind loosest: expected 12, got %d", got)
	}
	if got := evalInt(t, "_ + 1 >> _ * 2 >> _ - 3", 5); got != 9 {
		t.Errorf("three-segment pipe: expected 9, got %d", got)
	}
}

func TestAttributesAndMethods(t *testing.T) {
	record := object.NewRecord(map[string]object.Object{
		"name": &object.String{Value: "ada lovelace"},
		"tags": object.NewList([]object.Object{
			&object.String{Value: "math"},
			&object.String{Value: "code"},
		}),
	})

	result := parseEval(t, "_.name", record)
	if result.(*object.String).Value != "ada lovelace" {
		t.Errorf("_.name: got %s", result.Inspect())
	}

	result = parseEval(t, "_.name.upper()", record)
	if result.(*object.String).Value != "ADA LOVELACE" {
		t.Errorf("_.name.upper(): got %s", result.Inspect())
	}

	result = parseEval(t, "_.tags[1]", record)
	if result.(*object.String).Value != "code" {
		t.Errorf("_.tags[1]: got %s", result.Inspect())
	}

	result = parseEval(t, `_.name.split(" ")[0]`, record)
	if result.(*object.String).Value != "ada" {
		t.Errorf("split[0]: got %s", result.Inspect())
	}

	result = parseEval(t, `_["name"]`, record)
	if result.(*object.String).Value != "ada lovelace" {
		t.Errorf(`_["name"]: got %s`, result.Inspect())
	}

	result = parseEval(t, `_.replace('a', 'o')`, &object.String{Value: "banana"})
	if result.(*object.String).Value != "bonono" {
		t.Errorf("replace with single quotes: got %s", result.Inspect())
	}
}

func TestFloatsAndStrings(t *testing.T) {
	result := parseEval(t, "_ * 1.5", &object.Integer{Value: 4})
	if f, ok := result.(*object.Float); !ok || f.Value != 6.0 {
		t.Errorf("_ * 1.5: got %s", result.Inspect())
	}

	result = parseEval(t, `_ + "!"`, &object.String{Value: "hi"})
	if s, ok := result.(*object.String); !ok || s.Value != "hi!" {
		t.Errorf(`_ + "!": got %s`, result.Inspect())
	}

	result = parseEval(t, "_ == true", object.TRUE)
	if result != object.TRUE {
		t.Errorf("_ == true: got %s", result.Inspect())
	}
}

func TestConstantFolding(t *testing.T) {
	// Literal subexpressions fold at parse time; the chain only carries
	// the folded constant.
	node, err := Parse("_ + 2 * 3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := node.String(); got != "(_ + 6)" {
		t.Errorf("expected folded rendering (_ + 6), got %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2", "placeholder"},
		{"2 - _", "left"},
		{"2 / _", "left"},
		{"_ +", "unexpected"},
		{"(_ + 1", "')'"},
		{"_ >> 2", ">>"},
		{"2 >> _", ">>"},
		{"_ @ 2", "unexpected"},
		{`_ + "unterminated`, "unterminated"},
		{"_.5", "attribute name"},
		{"foo + _", "identifier"},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input)
		if err == nil {
			t.Errorf("%q: expected an error", tt.input)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: expected error mentioning %q, got %v", tt.input, tt.want, err)
		}
	}
}
