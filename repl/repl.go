// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop interface.
//          It connects the user input stream to the compiler pipeline (Lexer->Parser->Evaluator)
//          and manages the persistent session state.
// ==============================================================================================

package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"eloquence/evaluator"
	"eloquence/lexer"
	"eloquence/object"
	"eloquence/parser"
	"eloquence/token"
)

// Color definitions for REPL output. Each carries its own meaning so the
// session reads consistently: errors and false in red, integers in yellow,
// strings and true in green, arrays and maps in blue, functions in purple,
// the banner in green, and help text and debug panes in gray.
var (
	promptColor  = color.New(color.FgCyan)
	bannerColor  = color.New(color.FgGreen)
	yellowColor  = color.New(color.FgYellow)
	redColor     = color.New(color.FgRed, color.Bold)
	greenColor   = color.New(color.FgGreen)
	blueColor    = color.New(color.FgBlue)
	grayColor    = color.New(color.FgHiBlack)
	purpleColor  = color.New(color.FgMagenta)
)

const (
	banner = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃  _____ _                                           ┃
┃ | ____| | ___   __ _ _   _  ___ _ __   ___ ___     ┃
┃ |  _| | |/ _ \ / _` + "`" + ` | | | |/ _ \ '_ \ / __/ _ \    ┃
┃ | |___| | (_) | (_| | |_| |  __/ | | | (_|  __/    ┃
┃ |_____|_|\___/ \__, |\__,_|\___|_| |_|\___\___|    ┃
┃                   |_|                              ┃
┃                                                    ┃
┃ The Eloquence Language                             ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
`
	version = "0.1"
	prompt  = ">> "
)

// Repl bundles the state a session needs: the environment persists across
// lines so variables bound on one line are visible on the next, and
// debugMode toggles the token/AST trace panes.
type Repl struct {
	env       *object.Environment
	debugMode bool
}

// New creates a fresh REPL session with an empty top-level environment.
func New() *Repl {
	return &Repl{env: object.NewEnvironment()}
}

// Start launches the Read-Eval-Print Loop using readline for line editing
// and history. 'out' receives the banner, results, and error output; input
// is read directly through readline, so Start takes no input reader
// (matching the readline-backed REPLs in the language's surrounding ecosystem).
func (r *Repl) Start(out io.Writer) error {
	bannerColor.Fprint(out, banner)
	yellowColor.Fprintf(out, "Eloquence v%s\n", version)
	r.printHelp(out)

	rl, err := readline.New(promptColor.Sprint(prompt))
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt (Ctrl+C)
			yellowColor.Fprintln(out, "Goodbye!")
			return nil
		}

		rl.SaveHistory(line)

		if r.ProcessLine(out, line) {
			return nil
		}
	}
}

// ProcessLine handles a single line of input: a dot-command or a snippet of
// source to evaluate. It returns true when the session should terminate.
// Start drives this per readline iteration; tests drive it directly so the
// dispatch logic can be verified without a real terminal attached.
func (r *Repl) ProcessLine(out io.Writer, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ".") {
		return r.handleCommand(out, line)
	}

	r.evalLine(out, line)
	return false
}

// handleCommand processes a REPL dot-command. It returns true when the
// session should terminate.
func (r *Repl) handleCommand(out io.Writer, line string) bool {
	switch line {
	case ".exit":
		yellowColor.Fprintln(out, "Goodbye!")
		return true
	case ".clear":
		r.env = object.NewEnvironment()
		greenColor.Fprintln(out, "Environment cleared (memory reset).")
	case ".debug":
		r.debugMode = !r.debugMode
		status := "DISABLED"
		if r.debugMode {
			status = "ENABLED"
		}
		grayColor.Fprintf(out, "Debug mode %s\n", status)
	case ".help":
		r.printHelp(out)
	default:
		redColor.Fprintf(out, "Unknown command: %s. Type .help for info.\n", line)
	}
	return false
}

func (r *Repl) evalLine(out io.Writer, line string) {
	if r.debugMode {
		printTokens(out, line)
	}

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		printParserErrors(out, p.Errors())
		return
	}

	if r.debugMode {
		printAST(out, program)
	}

	evaluated := evaluator.Run(program, r.env)
	if evaluated != nil {
		printEvalResult(out, evaluated)
	}
}

func (r *Repl) printHelp(out io.Writer) {
	grayColor.Fprintln(out, "Commands:")
	grayColor.Fprintln(out, "  .exit   Quit the REPL")
	grayColor.Fprintln(out, "  .clear  Reset memory")
	grayColor.Fprintln(out, "  .debug  Toggle verbose AST/Token output")
	grayColor.Fprintln(out, "  .help   Show this message")
	grayColor.Fprintln(out)
}

func printTokens(out io.Writer, line string) {
	grayColor.Fprintln(out, "┌── [ TOKENS ] ──────────────────────────────────────────┐")
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		grayColor.Fprintf(out, "│ %-15s : %s\n", tok.Type, tok.Literal)
	}
	grayColor.Fprintln(out, "└────────────────────────────────────────────────────────┘")
}

func printAST(out io.Writer, program interface{ String() string }) {
	grayColor.Fprintln(out, "┌── [ AST TREE ] ────────────────────────────────────────┐")
	if str := program.String(); str != "" {
		grayColor.Fprintf(out, "%s\n", str)
	}
	grayColor.Fprintln(out, "└────────────────────────────────────────────────────────┘")
}

func printParserErrors(out io.Writer, errors []string) {
	redColor.Fprintln(out, "Whoops! Parser Errors:")
	for _, msg := range errors {
		redColor.Fprintf(out, "  x %s\n", msg)
	}
}

// printEvalResult formats the output based on object type.
func printEvalResult(out io.Writer, obj object.Object) {
	if obj == nil || obj.Type() == object.NULL_OBJ {
		return
	}

	str := obj.Inspect()

	switch obj := obj.(type) {
	case *object.Error:
		redColor.Fprintf(out, "%s\n", obj.Error())
	case *object.Integer:
		yellowColor.Fprintf(out, "%s\n", str)
	case *object.Boolean:
		c := greenColor
		if !obj.Value {
			c = redColor
		}
		c.Fprintf(out, "%s\n", str)
	case *object.String:
		greenColor.Fprintf(out, "%s\n", str)
	case *object.ReturnValue:
		printEvalResult(out, obj.Value)
	case *object.Function:
		purpleColor.Fprintln(out, "(function)")
	case *object.Array:
		blueColor.Fprintf(out, "%s\n", str)
	case *object.Map:
		blueColor.Fprintf(out, "%s\n", str)
	default:
		out.Write([]byte(str + "\n"))
	}
}
