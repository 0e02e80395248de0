package main

import "github.com/lebr0nli/NCU-Mini-LISP/cmd"

func main() {
	cmd.Execute()
}
