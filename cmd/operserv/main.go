package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps main free of exits so deferred cleanup always happens.
func run(args []string) error {
	root := newRootCommand(os.Stdout)
	root.SetArgs(args)
	return root.Execute()
}
