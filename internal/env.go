package internal

// noScope is the parent of the global scope
const noScope = -1

type scope struct {
	values map[string]Value
	parent int
}

// env is an arena of lexical scopes addressed by index. Index 0 is the global
// scope. Scopes are pushed and popped in strict nesting order.
type env struct {
	scopes []scope
}

func newEnv() *env {
	e := &env{}
	e.push(noScope)
	return e
}

// push creates a scope enclosed by parent and returns its index
func (e *env) push(parent int) int {
	e.scopes = append(e.scopes, scope{
		values: make(map[string]Value),
		parent: parent,
	})
	return len(e.scopes) - 1
}

// pop releases index and every scope created after it
func (e *env) pop(index int) {
	for i := index; i < len(e.scopes); i++ {
		e.scopes[i] = scope{}
	}
	e.scopes = e.scopes[:index]
}

func (e *env) define(index int, name string, value Value) {
	e.scopes[index].values[name] = value
}

func (e *env) get(index int, name Token) (Value, error) {
	for i := index; i != noScope; i = e.scopes[i].parent {
		if value, ok := e.scopes[i].values[name.Lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVar(name)
}

func (e *env) assign(index int, name Token, value Value) (Value, error) {
	for i := index; i != noScope; i = e.scopes[i].parent {
		if _, ok := e.scopes[i].values[name.Lexeme]; ok {
			e.scopes[i].values[name.Lexeme] = value
			return value, nil
		}
	}
	return nil, undefinedVar(name)
}

func (e *env) depth() int {
	return len(e.scopes)
}

func undefinedVar(name Token) *RuntimeError {
	return runtimeErr(name, msgUndefinedVar, name.Lexeme)
}
