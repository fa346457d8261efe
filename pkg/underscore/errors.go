package underscore

import (
	"errors"
	"fmt"

	"github.com/funvibe/underscore/internal/object"
)

// Failure taxonomy. Evaluation errors wrap exactly one of these sentinels,
// so callers branch with errors.Is.
var (
	// ErrUnsupportedOperation: the operator protocol rejected the operand
	// types. Surfaced from the value's own protocol, not reinterpreted.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrAttributeLookup: the named attribute is absent on the evaluated value.
	ErrAttributeLookup = errors.New("attribute lookup failed")
	// ErrIndex: index out of bounds or key of the wrong type.
	ErrIndex = errors.New("index error")
	// ErrArity: call arguments do not match the resolved interpretation.
	// Raised by the dispatcher before evaluation begins.
	ErrArity = errors.New("arity error")
	// ErrRuntime: failure raised by the value itself (division by zero,
	// a panicking host call).
	ErrRuntime = errors.New("runtime error")
)

func wrapError(err error) error {
	var oe *object.Error
	if !errors.As(err, &oe) {
		return err
	}

	var sentinel error
	switch oe.Kind {
	case object.KindUnsupported:
		sentinel = ErrUnsupportedOperation
	case object.KindAttribute:
		sentinel = ErrAttributeLookup
	case object.KindIndex:
		sentinel = ErrIndex
	case object.KindArity:
		sentinel = ErrArity
	default:
		sentinel = ErrRuntime
	}
	return fmt.Errorf("%w: %s", sentinel, oe.Message)
}
