package object

import (
	"math"
	"strings"
)

// Binary applies an infix operator through the value's own protocol.
// No engine-side coercion beyond the implicit Int -> Float widening.
func Binary(operator string, left, right Object) Object {
	if left.Type() == INTEGER_OBJ && right.Type() == INTEGER_OBJ {
		return integerInfix(operator, left.(*Integer), right.(*Integer))
	}
	if left.Type() == FLOAT_OBJ && right.Type() == FLOAT_OBJ {
		return floatInfix(operator, left.(*Float), right.(*Float))
	}

	// Implicit Int -> Float conversion
	if left.Type() == INTEGER_OBJ && right.Type() == FLOAT_OBJ {
		return floatInfix(operator, &Float{Value: float64(left.(*Integer).Value)}, right.(*Float))
	}
	if left.Type() == FLOAT_OBJ && right.Type() == INTEGER_OBJ {
		return floatInfix(operator, left.(*Float), &Float{Value: float64(right.(*Integer).Value)})
	}

	if left.Type() == STRING_OBJ && right.Type() == STRING_OBJ {
		return stringInfix(operator, left.(*String), right.(*String))
	}
	if left.Type() == STRING_OBJ && right.Type() == INTEGER_OBJ && operator == "*" {
		n := right.(*Integer).Value
		if n < 0 {
			n = 0
		}
		return &String{Value: strings.Repeat(left.(*String).Value, int(n))}
	}
	if left.Type() == BOOLEAN_OBJ && right.Type() == BOOLEAN_OBJ {
		return booleanInfix(operator, left.(*Boolean), right.(*Boolean))
	}
	if left.Type() == LIST_OBJ && right.Type() == LIST_OBJ {
		return listInfix(operator, left.(*List), right.(*List))
	}

	switch operator {
	case "==":
		return nativeBoolToBooleanObject(Equal(left, right))
	case "!=":
		return nativeBoolToBooleanObject(!Equal(left, right))
	}

	return newError(KindUnsupported, "unsupported operand types: %s %s %s", left.Type(), operator, right.Type())
}

// Prefix applies a unary operator ("-", "abs", "~").
func Prefix(operator string, right Object) Object {
	switch operator {
	case "-":
		if i, ok := right.(*Integer); ok {
			return &Integer{Value: -i.Value}
		}
		if f, ok := right.(*Float); ok {
			return &Float{Value: -f.Value}
		}
	case "abs":
		if i, ok := right.(*Integer); ok {
			if i.Value < 0 {
				return &Integer{Value: -i.Value}
			}
			return i
		}
		if f, ok := right.(*Float); ok {
			return &Float{Value: math.Abs(f.Value)}
		}
	case "~":
		if i, ok := right.(*Integer); ok {
			return &Integer{Value: ^i.Value}
		}
	}
	return newError(KindUnsupported, "unsupported operand type: %s%s", operator, right.Type())
}

func integerInfix(operator string, left, right *Integer) Object {
	leftVal, rightVal := left.Value, right.Value

	switch operator {
	case "+":
		return &Integer{Value: leftVal + rightVal}
	case "-":
		return &Integer{Value: leftVal - rightVal}
	case "*":
		return &Integer{Value: leftVal * rightVal}
	case "/":
		if rightVal == 0 {
			return newError(KindRuntime, "division by zero")
		}
		return &Integer{Value: leftVal / rightVal}
	case "%":
		if rightVal == 0 {
			return newError(KindRuntime, "modulo by zero")
		}
		return &Integer{Value: leftVal % rightVal}
	case "**":
		if rightVal < 0 {
			// A negative exponent has no integer result; widen to float.
			return &Float{Value: math.Pow(float64(leftVal), float64(rightVal))}
		}
		return &Integer{Value: intPow(leftVal, rightVal)}
	case "&":
		return &Integer{Value: leftVal & rightVal}
	case "|":
		return &Integer{Value: leftVal | rightVal}
	case "^":
		return &Integer{Value: leftVal ^ rightVal}
	case "<<":
		return &Integer{Value: leftVal << rightVal}
	case ">>":
		return &Integer{Value: leftVal >> rightVal}
	case "<":
		return nativeBoolToBooleanObject(leftVal < rightVal)
	case ">":
		return nativeBoolToBooleanObject(leftVal > rightVal)
	case "==":
		return nativeBoolToBooleanObject(leftVal == rightVal)
	case "!=":
		return nativeBoolToBooleanObject(leftVal != rightVal)
	case "<=":
		return nativeBoolToBooleanObject(leftVal <= rightVal)
	case ">=":
		return nativeBoolToBooleanObject(leftVal >= rightVal)
	default:
		return newError(KindUnsupported, "unsupported operand types: %s %s %s", left.Type(), operator, right.Type())
	}
}

func floatInfix(operator string, left, right *Float) Object {
	leftVal, rightVal := left.Value, right.Value

	switch operator {
	case "+":
		return &Float{Value: leftVal + rightVal}
	case "-":
		return &Float{Value: leftVal - rightVal}
	case "*":
		return &Float{Value: leftVal * rightVal}
	case "/":
		if rightVal == 0.0 {
			return newError(KindRuntime, "division by zero")
		}
		return &Float{Value: leftVal / rightVal}
	case "%":
		if rightVal == 0.0 {
			return newError(KindRuntime, "modulo by zero")
		}
		return &Float{Value: math.Mod(leftVal, rightVal)}
	case "**":
		return &Float{Value: math.Pow(leftVal, rightVal)}
	case "<":
		return nativeBoolToBooleanObject(leftVal < rightVal)
	case ">":
		return nativeBoolToBooleanObject(leftVal > rightVal)
	case "==":
		return nativeBoolToBooleanObject(leftVal == rightVal)
	case "!=":
		return nativeBoolToBooleanObject(leftVal != rightVal)
	case "<=":
		return nativeBoolToBooleanObject(leftVal <= rightVal)
	case ">=":
		return nativeBoolToBooleanObject(leftVal >= rightVal)
	default:
		return newError(KindUnsupported, "unsupported operand types: %s %s %s", left.Type(), operator, right.Type())
	}
}

func stringInfix(operator string, left, right *String) Object {
	switch operator {
	case "+":
		return &String{Value: left.Value + right.Value}
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value)
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value)
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value)
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value)
	case "<=":
		return nativeBoolToBooleanObject(left.Value <= right.Value)
	case ">=":
		return nativeBoolToBooleanObject(left.Value >= right.Value)
	default:
		return newError(KindUnsupported, "unsupported operand types: %s %s %s", left.Type(), operator, right.Type())
	}
}

func booleanInfix(operator string, left, right *Boolean) Object {
	switch operator {
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value)
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value)
	case "&":
		return nativeBoolToBooleanObject(left.Value && right.Value)
	case "|":
		return nativeBoolToBooleanObject(left.Value || right.Value)
	case "^":
		return nativeBoolToBooleanObject(left.Value != right.Value)
	default:
		return newError(KindUnsupported, "unsupported operand types: %s %s %s", left.Type(), operator, right.Type())
	}
}

func listInfix(operator string, left, right *List) Object {
	switch operator {
	case "+":
		return left.Concat(right)
	case "==":
		return nativeBoolToBooleanObject(Equal(left, right))
	case "!=":
		return nativeBoolToBooleanObject(!Equal(left, right))
	default:
		return newError(KindUnsupported, "unsupported operand types: %s %s %s", left.Type(), operator, right.Type())
	}
}

func intPow(n, m int64) int64 {
	if m <= 0 {
		return 1
	}
	var result int64 = 1
	for i := int64(0); i < m; i++ {
		result *= n
	}
	return result
}
