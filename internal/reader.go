package internal

import (
	"fmt"
	"strconv"
)

// PrintTree renders stmts as S-expressions, one statement per line
func PrintTree(stmts []Stmt) string {
	out := ""
	for _, stmt := range stmts {
		out += stmtString(stmt) + "\n"
	}
	return out
}

func stmtString(stmt Stmt) string {
	switch s := stmt.(type) {
	case *expressionStmt:
		return exprString(s.expression)
	case *printStmt:
		return fmt.Sprintf("(print %s)", exprString(s.expression))
	case *varStmt:
		if s.initializer == nil {
			return fmt.Sprintf("(var %s)", s.name.Lexeme)
		}
		return fmt.Sprintf("(var %s %s)", s.name.Lexeme, exprString(s.initializer))
	case *blockStmt:
		out := "(scope"
		for _, st := range s.stmts {
			out += " " + stmtString(st)
		}
		return out + ")"
	case *ifStmt:
		if s.elseBranch == nil {
			return fmt.Sprintf("(if %s %s)", exprString(s.condition), stmtString(s.thenBranch))
		}
		return fmt.Sprintf(
			"(if %s %s %s)",
			exprString(s.condition),
			stmtString(s.thenBranch),
			stmtString(s.elseBranch),
		)
	case *whileStmt:
		return fmt.Sprintf("(while %s %s)", exprString(s.condition), stmtString(s.body))
	case *functionStmt:
		out := "(fun " + s.name.Lexeme + " ("
		for i, param := range s.params {
			out += param.Lexeme
			if i < len(s.params)-1 {
				out += " "
			}
		}
		out += ")"
		for _, st := range s.body {
			out += " " + stmtString(st)
		}
		return out + ")"
	case *classStmt:
		out := "(class " + s.name.Lexeme
		if s.superclass != nil {
			out += " < " + s.superclass.name.Lexeme
		}
		for _, m := range s.methods {
			out += " " + stmtString(m)
		}
		return out + ")"
	case *returnStmt:
		if s.value == nil {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", exprString(s.value))
	}
	return fmt.Sprintf("(unknown %T)", stmt)
}

func exprString(expr Expr) string {
	switch e := expr.(type) {
	case *literalExpr:
		if str, ok := e.value.(loxString); ok {
			return strconv.Quote(string(str))
		}
		return e.value.String()
	case *groupingExpr:
		return fmt.Sprintf("(group %s)", exprString(e.expression))
	case *variableExpr:
		return e.name.Lexeme
	case *assignExpr:
		return fmt.Sprintf("(= %s %s)", e.name.Lexeme, exprString(e.value))
	case *unaryExpr:
		return fmt.Sprintf("(%s %s)", e.operator.Lexeme, exprString(e.right))
	case *binaryExpr:
		return fmt.Sprintf("(%s %s %s)", e.operator.Lexeme, exprString(e.left), exprString(e.right))
	case *logicalExpr:
		return fmt.Sprintf("(%s %s %s)", e.operator.Lexeme, exprString(e.left), exprString(e.right))
	case *callExpr:
		out := "(call " + exprString(e.callee)
		for _, arg := range e.arguments {
			out += " " + exprString(arg)
		}
		return out + ")"
	case *getExpr:
		return fmt.Sprintf("(. %s %s)", exprString(e.object), e.name.Lexeme)
	case *setExpr:
		return fmt.Sprintf("(= (. %s %s) %s)", exprString(e.object), e.name.Lexeme, exprString(e.value))
	case *superExpr:
		return "(super " + e.method.Lexeme + ")"
	case *thisExpr:
		return "this"
	}
	return fmt.Sprintf("(unknown %T)", expr)
}
