/*
File    : littlearn/main.go
Author  : akashmaji946
*/

// This file is a minimal usage demo of the littlearn library packages
// (lexer -> parser -> interp), independent of the CLI in main/main.go.
// It is not the littlearn command; build/run main/main.go for that.
package main

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/littlearn/interp"
	"github.com/akashmaji946/littlearn/parser"
	"github.com/akashmaji946/littlearn/sink"
)

func runDemo(label, src string) {
	fmt.Printf("--- %s ---\n%s\n", label, src)

	prog, err := parser.Parse(src)
	if err != nil {
		fmt.Printf("parse error: %v\n\n", err)
		return
	}

	var buf bytes.Buffer
	out := sink.NewWriterSink(&buf)
	in := interp.NewInterpreter(interp.Options{Output: out, ErrorSink: out})

	result, err := in.Run(prog)
	if err != nil {
		fmt.Printf("runtime error: %v\n\n", err)
		return
	}
	if buf.Len() > 0 {
		fmt.Printf("output: %s\n", buf.String())
	}
	fmt.Printf("result: %s\n\n", result.String())
}

func main() {
	runDemo("arithmetic", `
	int x = 4 - (1 + 2) + 2 + 3 * 4 / 2;
	return x;
	`)

	runDemo("fibonacci", `
	int fib(int n) {
		if (n < 2) {
			return n;
		}
		return fib(n - 1) + fib(n - 2);
	}
	int i = 0;
	while (i < 8) {
		print(fib(i));
		i = i + 1;
	}
	`)

	runDemo("collatz", `
	int steps(int n) {
		int count = 0;
		while (n != 1) {
			if (n % 2 == 0) {
				n = n / 2;
			} else {
				n = 3 * n + 1;
			}
			count = count + 1;
		}
		return count;
	}
	return steps(27);
	`)
}
