package internal

import "github.com/sirupsen/logrus"

// Interpret executes stmts in order and stops at the first RuntimeError.
func (e *Interpreter) Interpret(stmts []Stmt) error {
	e.log.WithField("stmts", len(stmts)).Debug("interpreting")
	for _, s := range stmts {
		if err := e.execute(s); err != nil {
			e.log.WithError(err).Debug("aborted by runtime error")
			return err
		}
	}
	return nil
}

func (e *Interpreter) execute(s Stmt) error {
	switch s := s.(type) {
	case *expressionStmt:
		_, err := e.evaluate(s.expression)
		return err
	case *printStmt:
		value, err := e.evaluate(s.expression)
		if err != nil {
			return err
		}
		e.printer.Println(value.String())
		return nil
	case *varStmt:
		// Without an initializer the name stays unbound
		if s.initializer == nil {
			return nil
		}
		value, err := e.evaluate(s.initializer)
		if err != nil {
			return err
		}
		e.env.define(e.current, s.name.Lexeme, value)
		return nil
	case *blockStmt:
		return e.executeBlock(s.stmts)
	case *ifStmt:
		cond, err := e.evaluate(s.condition)
		if err != nil {
			return err
		}
		if truthy(cond) {
			return e.execute(s.thenBranch)
		}
		if s.elseBranch != nil {
			return e.execute(s.elseBranch)
		}
		return nil
	case *whileStmt:
		for {
			cond, err := e.evaluate(s.condition)
			if err != nil {
				return err
			}
			if !truthy(cond) {
				return nil
			}
			if err := e.execute(s.body); err != nil {
				return err
			}
		}
	case *classStmt:
		return runtimeErr(s.name, msgUnsupported, "Class declarations")
	case *functionStmt:
		return runtimeErr(s.name, msgUnsupported, "Function declarations")
	case *returnStmt:
		return runtimeErr(s.keyword, msgUnsupported, "Return statements")
	}
	panic("unknown statement node")
}

// executeBlock runs stmts in a new scope. The previous scope is current
// again when it returns, whether or not a statement failed.
func (e *Interpreter) executeBlock(stmts []Stmt) error {
	previous := e.current
	block := e.env.push(previous)
	e.current = block
	trace := e.log.Logger.IsLevelEnabled(logrus.TraceLevel)
	if trace {
		e.log.WithField("depth", e.env.depth()).Trace("enter scope")
	}
	defer func() {
		e.env.pop(block)
		e.current = previous
		if trace {
			e.log.WithField("depth", e.env.depth()).Trace("leave scope")
		}
	}()

	for _, s := range stmts {
		if err := e.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (e *Interpreter) evaluate(ex Expr) (Value, error) {
	switch ex := ex.(type) {
	case *literalExpr:
		return ex.value, nil
	case *groupingExpr:
		return e.evaluate(ex.expression)
	case *variableExpr:
		return e.env.get(e.current, ex.name)
	case *assignExpr:
		value, err := e.evaluate(ex.value)
		if err != nil {
			return nil, err
		}
		return e.env.assign(e.current, ex.name, value)
	case *logicalExpr:
		left, err := e.evaluate(ex.left)
		if err != nil {
			return nil, err
		}
		if ex.operator.Kind == OR {
			if truthy(left) {
				return left, nil
			}
		} else if !truthy(left) {
			return left, nil
		}
		return e.evaluate(ex.right)
	case *unaryExpr:
		right, err := e.evaluate(ex.right)
		if err != nil {
			return nil, err
		}
		return applyUnary(ex.operator, right)
	case *binaryExpr:
		left, err := e.evaluate(ex.left)
		if err != nil {
			return nil, err
		}
		right, err := e.evaluate(ex.right)
		if err != nil {
			return nil, err
		}
		return applyBinary(ex.operator, left, right)
	case *callExpr:
		return nil, runtimeErr(ex.paren, msgUnsupported, "Function calls")
	case *getExpr:
		return nil, runtimeErr(ex.name, msgUnsupported, "Property accesses")
	case *setExpr:
		return nil, runtimeErr(ex.name, msgUnsupported, "Property assignments")
	case *superExpr:
		return nil, runtimeErr(ex.keyword, msgUnsupported, "Super expressions")
	case *thisExpr:
		return nil, runtimeErr(ex.keyword, msgUnsupported, "This expressions")
	}
	panic("unknown expression node")
}
