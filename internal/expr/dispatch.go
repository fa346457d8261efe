package expr

import "github.com/funvibe/underscore/internal/object"

// Call is the single entry point behind expression invocation. It decides
// whether the call means "evaluate against data" or "capture construction
// arguments" and returns exactly one of (value, deferred).
//
// The decision table:
//   - Terminal node is anything but an uninvoked attribute access: the call
//     must carry exactly one positional argument and no keywords, and it
//     evaluates the chain against that argument.
//   - Terminal node is an uninvoked attribute access: genuinely ambiguous.
//     With exactly one positional argument the attribute is resolved against
//     it; a non-callable attribute value means the call was an evaluation and
//     that value is returned. A callable attribute value, any other argument
//     count, or any keyword argument means the call supplies method
//     arguments: construction wins and a method-call expression is returned.
//
// Consequence, by deliberate choice: a callable-valued attribute can never
// be fetched as a plain value through this entry point; callers who need
// that use Evaluate directly. If the probe lookup fails the call is treated
// as construction, since the real input at evaluation time may well carry
// the attribute.
func Call(e *Node, args []object.Object, kwargs map[string]object.Object) (object.Object, *Node, error) {
	t := e.terminal()

	if t.Op == OpGetAttr && t.Args == nil {
		if len(args) == 1 && len(kwargs) == 0 {
			value, err := Evaluate(e, args[0])
			if err == nil && !object.IsCallable(value) {
				return value, nil, nil
			}
		}
		deferred, err := Method(e, args, kwargs)
		if err != nil {
			return nil, nil, err
		}
		return nil, deferred, nil
	}

	if len(args) != 1 || len(kwargs) != 0 {
		return nil, nil, object.NewError(object.KindArity,
			"expression call requires exactly one positional argument, got %d positional and %d keyword",
			len(args), len(kwargs))
	}
	result, err := Evaluate(e, args[0])
	if err != nil {
		return nil, nil, err
	}
	return result, nil, nil
}
