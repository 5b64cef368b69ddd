package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string, line int) Token {
	return Token{Kind: IDENTIFIER, Lexeme: name, Line: line}
}

func TestEnvDefineAndGet(t *testing.T) {
	e := newEnv()
	e.define(0, "a", loxNumber(1))

	value, err := e.get(0, ident("a", 1))
	require.NoError(t, err)
	assert.Equal(t, loxNumber(1), value)

	// define overwrites in the same scope
	e.define(0, "a", loxString("x"))
	value, err = e.get(0, ident("a", 1))
	require.NoError(t, err)
	assert.Equal(t, loxString("x"), value)

	_, err = e.get(0, ident("b", 7))
	assert.EqualError(t, err, "[line 7] RuntimeError Undefined variable 'b'.")
}

func TestEnvLookupWalksOutward(t *testing.T) {
	e := newEnv()
	e.define(0, "outer", loxBool(true))
	inner := e.push(0)
	innermost := e.push(inner)

	value, err := e.get(innermost, ident("outer", 1))
	require.NoError(t, err)
	assert.Equal(t, loxBool(true), value)

	// Shadowing leaves the outer binding alone
	e.define(innermost, "outer", loxBool(false))
	value, err = e.get(innermost, ident("outer", 1))
	require.NoError(t, err)
	assert.Equal(t, loxBool(false), value)
	value, err = e.get(0, ident("outer", 1))
	require.NoError(t, err)
	assert.Equal(t, loxBool(true), value)
}

func TestEnvAssign(t *testing.T) {
	e := newEnv()
	e.define(0, "x", loxNumber(1))
	inner := e.push(0)

	value, err := e.assign(inner, ident("x", 1), loxNumber(2))
	require.NoError(t, err)
	assert.Equal(t, loxNumber(2), value)

	// The outer binding changed and no inner one was created
	assert.NotContains(t, e.scopes[inner].values, "x")
	value, err = e.get(0, ident("x", 1))
	require.NoError(t, err)
	assert.Equal(t, loxNumber(2), value)

	_, err = e.assign(inner, ident("y", 4), nilValue)
	assert.EqualError(t, err, "[line 4] RuntimeError Undefined variable 'y'.")
	_, err = e.get(inner, ident("y", 4))
	assert.Error(t, err)
}

func TestEnvPop(t *testing.T) {
	e := newEnv()
	first := e.push(0)
	second := e.push(first)
	require.Equal(t, 3, e.depth())

	e.define(second, "tmp", nilValue)
	e.pop(first)
	assert.Equal(t, 1, e.depth())

	// Indexes are reused once released
	assert.Equal(t, first, e.push(0))
	_, err := e.get(first, ident("tmp", 1))
	assert.Error(t, err)
}

func TestTruthyAndEqual(t *testing.T) {
	assert.False(t, truthy(nilValue))
	assert.False(t, truthy(loxBool(false)))
	assert.True(t, truthy(loxBool(true)))
	assert.True(t, truthy(loxNumber(0)))
	assert.True(t, truthy(loxString("")))

	assert.True(t, equal(nilValue, nilValue))
	assert.True(t, equal(loxNumber(1), loxNumber(1.0)))
	assert.False(t, equal(loxNumber(1), loxString("1")))
	assert.False(t, equal(loxBool(false), nilValue))
	assert.False(t, equal(loxString("a"), loxString("b")))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "3", loxNumber(3).String())
	assert.Equal(t, "-0.5", loxNumber(-0.5).String())
	assert.Equal(t, "1000000000000000000000", loxNumber(1e21).String())
	assert.Equal(t, "true", loxBool(true).String())
	assert.Equal(t, "nil", nilValue.String())
	assert.Equal(t, "raw \"text\"", loxString("raw \"text\"").String())
}
