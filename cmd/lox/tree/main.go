package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"lox/internal"
)

func main() {
	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) != 1 {
		fmt.Println("Usage: tree /path/to/source.lox")
		os.Exit(64)
	}

	source, err := os.ReadFile(argsWithoutProg[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading source"))
		os.Exit(74)
	}

	tokens, err := internal.Scan(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(65)
	}

	stmts, err := internal.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(65)
	}

	fmt.Print(internal.PrintTree(stmts))
}
