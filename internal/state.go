package internal

import (
	"fmt"
	"os"
	"strings"
)

// noChar marks a LexError that is not about a single character. Decoded
// source runes are never negative.
const noChar rune = -1

// LexError is reported by the lexer. Char is noChar when the error is not
// about a single character.
type LexError struct {
	Char rune
	Msg  string
	Line int
}

func (e *LexError) Error() string {
	if e.Char == noChar {
		return fmt.Sprintf("[line %d] LexError %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("[line %d] LexError `%c` %s", e.Line, e.Char, e.Msg)
}

// ParseError is reported by the parser
type ParseError struct {
	Msg  string
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] ParseError %s", e.Line, e.Msg)
}

// RuntimeError aborts the statements being interpreted
type RuntimeError struct {
	Msg  string
	Line int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] RuntimeError %s", e.Line, e.Msg)
}

// ErrorList holds every error found by one phase, in source order.
type ErrorList []error

func (l ErrorList) Error() string {
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Unwrap lets errors.As reach the individual errors
func (l ErrorList) Unwrap() []error {
	return l
}

// interpreterState collects the errors of a single scan or parse
type interpreterState struct {
	errors ErrorList
}

func (s *interpreterState) setError(err error) {
	s.errors = append(s.errors, err)
}

// Valid returns true if no error was collected
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

func (s *interpreterState) err() error {
	if s.Valid() {
		return nil
	}
	return s.errors
}

// PrintErrors prints err through p, one line per error. It returns true when
// there was something to print.
func PrintErrors(p IPrinter, err error) bool {
	if err == nil {
		return false
	}
	if list, ok := err.(ErrorList); ok {
		for _, e := range list {
			p.Fprintln(os.Stderr, e)
		}
		return true
	}
	p.Fprintln(os.Stderr, err)
	return true
}

// Lexer errors
const (
	msgUnexpectedChar  = "Unexpected character."
	msgUnterminatedStr = "Unterminated string."
	msgInvalidNumber   = "Invalid number."
)

// Parser errors
const (
	msgExpectExpr          = "Expect expression."
	msgExpectVarName       = "Expect variable name."
	msgExpectSemiAfterVar  = "Expect ';' after variable declaration."
	msgExpectSemiAfterVal  = "Expect ';' after value."
	msgExpectSemiAfterExpr = "Expect ';' after expression."
	msgExpectSemiAfterCond = "Expect ';' after loop condition."
	msgExpectRightParen    = "Expect ')' after expression."
	msgExpectRightBrace    = "Expect '}' after block."
	msgExpectParenAfterIf  = "Expect '(' after 'if'."
	msgExpectParenAfterCnd = "Expect ')' after condition."
	msgExpectParenWhile    = "Expect '(' after 'while'."
	msgExpectParenFor      = "Expect '(' after 'for'."
	msgExpectParenForEnd   = "Expect ')' after for clauses."
	msgInvalidAssignTarget = "Invalid assignment target."
)

// Runtime errors
const (
	msgUndefinedVar = "Undefined variable '%s'."
	msgUnsupported  = "%s are not supported."
)
