package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"lox/internal"
	"lox/internal/config"
)

// Exit codes follow sysexits.h
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
	exitConfig   = 78
)

type stdPrinter struct {
	color *color.Color
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

// Fprintln colours everything written to stderr
func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprintln(w, s.color.Red(strings.TrimSuffix(fmt.Sprintln(a...), "\n")))
	}
	return fmt.Fprintln(w, a...)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (default $HOME/"+config.DefaultFile+")")
	verbose := fs.Bool("v", false, "log debug information to stderr")
	noColor := fs.Bool("no-color", false, "disable coloured output")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: lox [flags] [script]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfig
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(cfg.Level())
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	out := color.New()
	out.SetOutput(os.Stderr)
	if *noColor || !cfg.Color {
		out.Disable()
	}
	p := stdPrinter{color: out}

	if fs.NArg() == 1 {
		return runFile(fs.Arg(0), p)
	}
	return runPrompt(cfg, p)
}

func runFile(path string, p stdPrinter) int {
	absPath, err := filepath.Abs(path)
	if err != nil {
		p.Fprintln(os.Stderr, errors.Wrap(err, "resolving script path"))
		return exitIOErr
	}

	source, err := os.ReadFile(absPath)
	if err != nil {
		p.Fprintln(os.Stderr, errors.Wrap(err, "reading script"))
		return exitIOErr
	}

	log := logrus.WithField("file", absPath)
	log.Debug("running script")

	interp := internal.NewInterpreter(p)
	err = interp.Run(source)
	internal.PrintErrors(p, err)
	return exitCode(err)
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var runErr *internal.RuntimeError
	if errors.As(err, &runErr) {
		return exitSoftware
	}
	return exitDataErr
}

func runPrompt(cfg config.Config, p stdPrinter) int {
	fmt.Println(p.color.Cyan("lox REPL. Ctrl+C cancels the line, Ctrl+D exits."))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				logrus.WithError(err).Warn("cannot save history")
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	interp := internal.NewInterpreter(p)
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return exitOK
		}
		if err != nil {
			p.Fprintln(os.Stderr, errors.Wrap(err, "reading prompt"))
			return exitIOErr
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		// Errors are reported and the session goes on
		internal.PrintErrors(p, interp.Run([]byte(line)))
	}
}
