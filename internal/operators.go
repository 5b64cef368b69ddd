package internal

import "fmt"

// Value is a runtime value: loxString, loxNumber, loxBool or loxNil.
// String renders the value the way print shows it.
type Value interface {
	String() string
}

func truthy(value Value) bool {
	switch v := value.(type) {
	case loxNil:
		return false
	case loxBool:
		return bool(v)
	default:
		return true
	}
}

// equal compares same-kind values by payload; different kinds are never equal.
func equal(left, right Value) bool {
	switch l := left.(type) {
	case loxNil:
		_, ok := right.(loxNil)
		return ok
	case loxBool:
		r, ok := right.(loxBool)
		return ok && l == r
	case loxString:
		r, ok := right.(loxString)
		return ok && l == r
	case loxNumber:
		r, ok := right.(loxNumber)
		return ok && l == r
	}
	return false
}

func applyUnary(operator Token, right Value) (Value, error) {
	switch operator.Kind {
	case BANG:
		return loxBool(!truthy(right)), nil
	case MINUS:
		n, ok := right.(loxNumber)
		if !ok {
			return nil, runtimeErr(operator, "%s must be a number.", right)
		}
		return -n, nil
	}
	return nil, runtimeErr(operator, "Unknown unary operator '%s'.", operator.Lexeme)
}

func applyBinary(operator Token, left, right Value) (Value, error) {
	switch operator.Kind {
	case EQUAL_EQUAL:
		return loxBool(equal(left, right)), nil
	case BANG_EQUAL:
		return loxBool(!equal(left, right)), nil
	case PLUS:
		if x, ok := left.(loxNumber); ok {
			if y, ok := right.(loxNumber); ok {
				return numberBinaryOperations[PLUS](x, y), nil
			}
		}
		if x, ok := left.(loxString); ok {
			if y, ok := right.(loxString); ok {
				return stringBinaryOperations[PLUS](x, y), nil
			}
		}
		return nil, runtimeErr(operator, "%s and %s must both be numbers or both be strings.", left, right)
	}

	apply, ok := numberBinaryOperations[operator.Kind]
	if !ok {
		return nil, runtimeErr(operator, "Unknown binary operator '%s'.", operator.Lexeme)
	}
	x, okLeft := left.(loxNumber)
	y, okRight := right.(loxNumber)
	if !okLeft || !okRight {
		return nil, runtimeErr(operator, "%s and %s must be numbers.", left, right)
	}
	return apply(x, y), nil
}

func runtimeErr(tk Token, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{
		Msg:  fmt.Sprintf(format, a...),
		Line: tk.Line,
	}
}
