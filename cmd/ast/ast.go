package main

import (
	"fmt"
	"os"
	"strings"
)

// Usage: go run ./cmd/ast Expr|Stmt
//
// Prints the node declarations of the given kind. Each node is a plain struct
// and the base interface is closed by an unexported marker method, so the
// interpreter walks the tree with a type switch.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(64)
	}

	var out string
	switch os.Args[1] {
	case "Stmt":
		out = generateAst("Stmt", []string{
			"Block: stmts []Stmt",
			"Class: name Token, superclass *variableExpr, methods []*functionStmt",
			"Expression: expression Expr",
			"Function: name Token, params []Token, body []Stmt",
			"If: keyword Token, condition Expr, thenBranch Stmt, elseBranch Stmt",
			"Print: keyword Token, expression Expr",
			"Return: keyword Token, value Expr",
			"Var: name Token, initializer Expr",
			"While: keyword Token, condition Expr, body Stmt",
		})
	case "Expr":
		out = generateAst("Expr", []string{
			"Assign: name Token, value Expr",
			"Binary: left Expr, operator Token, right Expr",
			"Call: callee Expr, paren Token, arguments []Expr",
			"Get: object Expr, name Token",
			"Grouping: expression Expr",
			"Literal: value Value",
			"Logical: left Expr, operator Token, right Expr",
			"Set: object Expr, name Token, value Expr",
			"Super: keyword Token, method Token",
			"This: keyword Token",
			"Unary: operator Token, right Expr",
			"Variable: name Token",
		})
	default:
		fmt.Fprintf(os.Stderr, "unknown node kind %q\n", os.Args[1])
		os.Exit(64)
	}
	fmt.Print(out)
}

func generateAst(baseName string, types []string) string {
	marker := strings.ToLower(baseName) + "Node"

	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += fmt.Sprintf("// %s is one of the %s nodes declared below\n", baseName, strings.ToLower(baseName))
	out += "type " + baseName + " interface {\n"
	out += "\t" + marker + "()\n"
	out += "}\n"
	// End base interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += "\n" + generateType(baseName, marker, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, marker, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Marker Definition
	out += "func (*" + structName + ") " + marker + "() {}\n"
	// End Marker Definition

	return out
}
