/*
File    : littlearn/repl/repl.go
Author  : akashmaji946
*/

// Package repl implements the Read-Eval-Print Loop for littlearn. The REPL
// lets a user type statements one line (or one readline "paragraph") at a
// time and see their effect immediately, reusing a single Interpreter
// across the whole session so variable and function declarations persist
// from one line to the next.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/littlearn/interp"
	"github.com/akashmaji946/littlearn/parser"
	"github.com/akashmaji946/littlearn/sink"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive littlearn session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given banner and prompt text.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and a short usage summary.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to littlearn!")
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against reader/writer until the user exits.
// Each accepted line is parsed and executed on its own, against a single
// Interpreter held for the lifetime of the session: a prior line's
// variable or function declarations remain visible to later lines, the
// same way littlearn.Frame's declarations persist across statements
// within one program.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	out := sink.NewWriterSink(writer)
	in := interp.NewInterpreter(interp.Options{
		Output:    out,
		ErrorSink: out,
	})

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, in)
	}
}

// executeWithRecovery parses and runs one line, recovering from any
// interpreter panic so a single bad line never kills the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, in *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	prog, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %s\n", err)
		return
	}

	result, err := in.Run(prog)
	if err != nil {
		redColor.Fprintf(writer, "[RUNTIME ERROR] %s\n", err)
		in.Errors().Reset()
		return
	}
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
