package internal

type loxString string

var stringBinaryOperations = map[TokenType]func(x, y loxString) Value{
	PLUS: func(x, y loxString) Value {
		return x + y
	},
}

func (s loxString) String() string {
	return string(s)
}
