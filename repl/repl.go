package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lebr0nli/NCU-Mini-LISP/lisp"
	"github.com/lebr0nli/NCU-Mini-LISP/parser"
)

// RunRepl runs a simple repl.  Unlike a program run, the session survives
// runtime errors; each erroneous line is reported and the environment keeps
// its accumulated definitions.
func RunRepl(prompt string, configs ...lisp.Config) {
	env := lisp.NewRootEnv(configs...)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		if incomplete(line) {
			buf = line
			rl.SetPrompt(contPrompt)
			continue
		}
		prog, err := parser.Parse(line)
		if err != nil {
			errln(err)
			continue
		}
		if err := lisp.RunProgram(env, prog); err != nil {
			errln(err)
		}
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

// incomplete reports whether line has more open parens than close parens, in
// which case the repl keeps reading continuation lines.  The grammar has no
// string literals so counting bytes is sufficient.
func incomplete(line []byte) bool {
	depth := 0
	for _, c := range line {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth > 0
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
