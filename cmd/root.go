package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mlisp",
	Short: "A mini-lisp interpreter",
	Long: `mlisp interprets a small lisp dialect with integers, booleans, and
first-class functions with lexical closures.`,
}

// Execute runs the root command.  It only needs to be called once, by
// main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
