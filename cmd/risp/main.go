package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/WiZLite/risp"
)

const (
	appName     = "risp"
	historyFile = ".risp_history"
	promptMain  = "risp> "
	promptCont  = "....> "
)

var usage = `risp

Usage:
  risp [SCRIPT]
  risp -c COMMAND
  risp -h | --help
  risp -v | --version

Arguments:
  SCRIPT  Path to a risp source file.

Options:
  -c, --command=COMMAND  Evaluate COMMAND and print the result.
  -h, --help             Display this help.
  -v, --version          Print the risp version.

With no SCRIPT and a TTY on stdin, risp starts an interactive session.
Otherwise it evaluates all of stdin as one program.
`

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	opts, err := docopt.ParseArgs(usage, nil, risp.Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ := opts.String("--command")
	script, _ := opts.String("SCRIPT")

	switch {
	case command != "":
		os.Exit(evalAndPrint(command))
	case script != "":
		os.Exit(runScript(script))
	case isatty.IsTerminal(os.Stdin.Fd()):
		os.Exit(repl())
	default:
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read stdin: %v\n", appName, err)
			os.Exit(1)
		}
		os.Exit(evalAndPrint(string(src)))
	}
}

func runScript(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	return evalAndPrint(string(src))
}

func evalAndPrint(src string) int {
	ip := risp.NewInterpreter()
	v, err := ip.EvalSource(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Execution error. %s\n", err)
		return 1
	}
	if v.Tag != risp.TVoid {
		fmt.Println(v)
	}
	return 0
}

func repl() int {
	fmt.Printf("risp %s\nCtrl+C cancels input, Ctrl+D or \"exit\" ends the session.\n", risp.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	ip := risp.NewInterpreter()

	for {
		code, ok := readBalanced(ln)
		if !ok {
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		if strings.TrimSpace(code) == "exit" {
			break
		}

		v, err := ip.EvalSource(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red("Execution error. "+err.Error()))
		} else if v.Tag != risp.TVoid {
			fmt.Println(v)
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	fmt.Println("Good bye")
	return 0
}

// readBalanced accumulates input lines until the parentheses balance, so a
// multi-line form is handed to the evaluator whole. Returns false on EOF.
func readBalanced(ln *liner.State) (string, bool) {
	var b strings.Builder
	unclosed := 0

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C: discard the partial form.
			return "", true
		}

		if b.Len() == 0 && strings.TrimSpace(line) == "exit" {
			return "exit", true
		}

		for _, ch := range line {
			switch ch {
			case '(':
				unclosed++
			case ')':
				unclosed--
			}
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if unclosed <= 0 {
			return b.String(), true
		}
	}
}
