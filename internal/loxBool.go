package internal

type loxBool bool

func (b loxBool) String() string {
	if b {
		return "true"
	}
	return "false"
}
