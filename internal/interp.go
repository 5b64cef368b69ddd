package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

//go:generate sh -c "go run ../cmd/ast Expr | gofmt > expr.go"
//go:generate sh -c "go run ../cmd/ast Stmt | gofmt > stmt.go"

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Interpreter evaluates statements against its own scope arena. Instances
// share nothing, and one instance must not be used from several goroutines.
type Interpreter struct {
	printer IPrinter
	log     *logrus.Entry

	env     *env
	current int
}

// NewInterpreter returns an interpreter that prints through p and logs to
// the standard logrus logger.
func NewInterpreter(p IPrinter) *Interpreter {
	return NewInterpreterWithLogger(p, logrus.StandardLogger())
}

// NewInterpreterWithLogger is NewInterpreter with an explicit logger
func NewInterpreterWithLogger(p IPrinter, logger *logrus.Logger) *Interpreter {
	return &Interpreter{
		printer: p,
		log:     logger.WithField("component", "lox"),
		env:     newEnv(),
		current: 0,
	}
}

// Run scans, parses and interprets one compilation unit. Globals defined by
// earlier calls stay visible, which is what the REPL relies on.
func (e *Interpreter) Run(source []byte) error {
	tokens, err := Scan(source)
	if err != nil {
		e.log.WithField("errors", countErrors(err)).Debug("scan failed")
		return err
	}
	e.log.WithField("tokens", len(tokens)).Debug("scanned")

	stmts, err := Parse(tokens)
	if err != nil {
		e.log.WithField("errors", countErrors(err)).Debug("parse failed")
		return err
	}
	e.log.WithField("stmts", len(stmts)).Debug("parsed")

	return e.Interpret(stmts)
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance and
// prints any error through p. It returns false when an error occurred.
func RunSourceWithPrinter(absPath, source string, p IPrinter) bool {
	interp := NewInterpreter(p)
	interp.log = interp.log.WithField("file", absPath)
	return !PrintErrors(p, interp.Run([]byte(source)))
}

func countErrors(err error) int {
	if list, ok := err.(ErrorList); ok {
		return len(list)
	}
	return 1
}
