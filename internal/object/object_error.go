package object

import "fmt"

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	// KindUnsupported: the operator protocol rejects the operand types.
	KindUnsupported ErrorKind = iota
	// KindAttribute: named attribute absent on the evaluated value.
	KindAttribute
	// KindIndex: index out of bounds or key of the wrong type.
	KindIndex
	// KindArity: call arguments do not match the required count.
	KindArity
	// KindRuntime: failure surfaced from the value itself (division by zero,
	// host call panic, conversion failure).
	KindRuntime
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported operation"
	case KindAttribute:
		return "attribute lookup"
	case KindIndex:
		return "index"
	case KindArity:
		return "arity"
	default:
		return "runtime"
	}
}

// Error is both an Object (so the operator protocol can return it in-band)
// and a Go error (so it can propagate out of Evaluate unchanged).
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }
func (e *Error) Hash() uint32     { return hashString(e.Message) }
func (e *Error) Error() string    { return e.Message }

// NewError builds an Error of the given kind.
func NewError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

func newError(kind ErrorKind, format string, a ...interface{}) *Error {
	return NewError(kind, format, a...)
}
