// Package console implements a line-oriented operator REPL for the demo
// driver, tokenizing each line with github.com/google/shlex so quoted
// arguments (file paths with spaces) work, replacing the compile-time
// DMD_MODE/LOOP_MODE constants of the original demo with runtime commands.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
)

// Handler dispatches one parsed command (command name plus its remaining
// arguments). It returns an error to report to the operator, or a bool
// requesting the REPL stop (e.g. on "quit").
type Handler func(cmd string, args []string) (stop bool, err error)

// REPL reads commands from in, tokenizes them with shlex, and dispatches
// them to a Handler, writing any returned errors to out.
type REPL struct {
	in  *bufio.Scanner
	out io.Writer
}

// New builds a REPL reading lines from in and writing errors to out.
func New(in io.Reader, out io.Writer) *REPL {
	return &REPL{in: bufio.NewScanner(in), out: out}
}

// Run reads and dispatches commands until in is exhausted or the handler
// requests a stop. Tokenizing and handler errors are written to out and do
// not stop the REPL; Run returns only the error from reading in, if any
// (io.EOF from in is not an error).
func (r *REPL) Run(handle Handler) error {
	for r.in.Scan() {
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}
		tokens, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(r.out, "console: %v\n", err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}
		stop, err := handle(tokens[0], tokens[1:])
		if err != nil {
			fmt.Fprintf(r.out, "console: %v\n", err)
		}
		if stop {
			return nil
		}
	}
	return r.in.Err()
}
