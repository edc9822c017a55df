/*
File    : littlearn/main/main.go
Author  : akashmaji946
*/

// Package main is the command-line entry point for littlearn. It offers
// three modes: REPL (default, no arguments), file mode (run a .lr source
// file to completion), and server mode (accept TCP connections and run a
// REPL per connection, useful for driving the interpreter from another
// process without linking against this module directly).
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/littlearn/interp"
	"github.com/akashmaji946/littlearn/parser"
	"github.com/akashmaji946/littlearn/repl"
	"github.com/akashmaji946/littlearn/sink"
	"github.com/fatih/color"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji946"
	LICENCE = "MIT"
	PROMPT  = "lr >>> "
)

var BANNER = `
 _ _ _   _     _
| (_) | | |   | |
| |_| |_| | ___| | ___  __ _ _ __ _ __
| | | __| |/ _ \ |/ _ \/ _` + "`" + ` | '__| '_ \
| | | |_| |  __/ |  __/ (_| | |  | | | |
|_|_|\__|_|\___|_|\___|\__,_|_|  |_| |_|
`

var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
	yellowCol = color.New(color.FgYellow)
)

// main dispatches to REPL mode, file mode, or server mode based on the
// command-line arguments.
//
// Usage:
//
//	littlearn                    - start interactive REPL mode
//	littlearn <filename>         - run the given littlearn source file
//	littlearn server <port>      - start a REPL server on the given port
//	littlearn --help             - display help information
//	littlearn --version          - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}
		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: littlearn server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}
		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("littlearn - a small C-like scripting language for embedded targets")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowCol.Println("  littlearn                    Start interactive REPL mode")
	yellowCol.Println("  littlearn <path-to-file>     Run a littlearn file (.lr)")
	yellowCol.Println("  littlearn server <port>      Start a REPL server on the given port")
	yellowCol.Println("  littlearn --help             Display this help message")
	yellowCol.Println("  littlearn --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowCol.Println("  .exit                        Exit the REPL")
}

func showVersion() {
	cyanColor.Println("littlearn - a small C-like scripting language for embedded targets")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads fileName, runs it to completion on a fresh Interpreter,
// and exits nonzero on any parse or runtime error.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(source))
}

// startServer listens on port and runs one REPL session per accepted TCP
// connection, each in its own goroutine with its own Interpreter.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("littlearn REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery parses and runs source to completion, printing
// the String() form of Run's result (the value of a top-level return, or
// else of the last top-level statement, "<none>" for a declaration) to
// stdout and exiting nonzero on a parse error or an unrecovered runtime
// error.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	prog, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		os.Exit(1)
	}

	out := sink.NewWriterSink(os.Stdout)
	in := interp.NewInterpreter(interp.Options{Output: out, ErrorSink: out})
	result, err := in.Run(prog)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %s\n", err)
		os.Exit(1)
	}
	if result != nil {
		fmt.Fprintf(os.Stdout, "%s\n", result.String())
	}
}
