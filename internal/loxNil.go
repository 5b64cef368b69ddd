package internal

type loxNil struct{}

// nilValue is the only value of the nil kind
var nilValue Value = loxNil{}

func (loxNil) String() string {
	return "nil"
}
