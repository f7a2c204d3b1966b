// ==============================================================================================
// FILE: main.go
// PURPOSE: Command-line entry point. Wires the repl, run, and version subcommands.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eloquence/evaluator"
	"eloquence/lexer"
	"eloquence/object"
	"eloquence/parser"
	"eloquence/repl"
)

var buildVersion = "0.1"

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eloquence",
		Short: "Eloquence is a small, dynamically-typed scripting language",
		// Invoking the binary with no subcommand drops straight into the REPL,
		// matching the original `go run main.go` behavior.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}

	root.AddCommand(newReplCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the interpreter version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("eloquence", buildVersion)
			return nil
		},
	}
}

func runRepl() error {
	return repl.New().Start(os.Stdout)
}

func runFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	l := lexer.New(string(data))
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		fmt.Fprintln(os.Stderr, "Parser Errors:")
		for _, msg := range p.Errors() {
			fmt.Fprintf(os.Stderr, "\t%s\n", msg)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	evaluated := evaluator.Run(program, env)

	if evalErr, ok := evaluated.(*object.Error); ok {
		fmt.Fprintln(os.Stderr, evalErr.Error())
		os.Exit(1)
	}
	return nil
}
