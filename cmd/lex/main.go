package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"lox/internal"
)

// Prints one token per line followed by the time spent scanning
func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: lex /path/to/source.lox")
		os.Exit(64)
	}

	source, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading source"))
		os.Exit(74)
	}

	start := time.Now()
	tokens, err := internal.Scan(source)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(65)
	}

	for _, tk := range tokens {
		fmt.Println(tk)
	}
	fmt.Fprintln(os.Stderr, "Time elapsed is:", elapsed)
}
