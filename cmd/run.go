package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lebr0nli/NCU-Mini-LISP/lisp"
	"github.com/lebr0nli/NCU-Mini-LISP/parser"
)

var (
	runExpression bool
	runDebug      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run mini-lisp code",
	Long: `Run mini-lisp code from a file, or from stdin when no file is given.
With --expression the arguments are interpreted as source text.`,
	Run: func(cmd *cobra.Command, args []string) {
		source, err := runReadSource(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		prog, err := parser.Parse(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if runDebug {
			for _, stmt := range prog {
				fmt.Fprintln(os.Stderr, "; parsed:", stmt)
			}
		}

		env := lisp.NewRootEnv()
		if err := lisp.RunProgram(env, prog); err != nil {
			fmt.Fprintln(os.Stderr, err)
			var lerr *lisp.EvalError
			if runDebug && errors.As(err, &lerr) && lerr.Stack.Height() > 0 {
				lerr.Stack.DebugPrint(os.Stderr)
			}
			os.Exit(1)
		}
	},
}

func runReadSource(args []string) ([]byte, error) {
	if runExpression {
		return []byte(strings.Join(args, "\n")), nil
	}
	switch len(args) {
	case 0:
		return io.ReadAll(os.Stdin)
	case 1:
		return os.ReadFile(args[0])
	default:
		return nil, fmt.Errorf("expected at most one file argument")
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as mini-lisp source text")
	runCmd.Flags().BoolVarP(&runDebug, "debug", "d", false,
		"Dump parsed syntax trees and error stack traces to stderr")
}
