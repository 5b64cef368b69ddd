package internal

import "strconv"

type loxNumber float64

var numberBinaryOperations = map[TokenType]func(x, y loxNumber) Value{
	PLUS: func(x, y loxNumber) Value {
		return x + y
	},
	MINUS: func(x, y loxNumber) Value {
		return x - y
	},
	STAR: func(x, y loxNumber) Value {
		return x * y
	},
	SLASH: func(x, y loxNumber) Value {
		return x / y
	},
	GREATER: func(x, y loxNumber) Value {
		return loxBool(x > y)
	},
	GREATER_EQUAL: func(x, y loxNumber) Value {
		return loxBool(x >= y)
	},
	LESS: func(x, y loxNumber) Value {
		return loxBool(x < y)
	},
	LESS_EQUAL: func(x, y loxNumber) Value {
		return loxBool(x <= y)
	},
}

func (n loxNumber) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
