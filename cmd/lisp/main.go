// Command lisp is a mal-family Lisp interpreter: a REPL and file-mode
// runner over internal/eval.
package main

import "github.com/lispkit/lisp/cmd/lisp/cmd"

func main() {
	cmd.Execute()
}
