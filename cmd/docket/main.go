package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"docket/internal/services"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and maps failures onto exit codes: 2 for input and
// configuration errors that retrying cannot fix, 1 for everything else.
func run(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
	}
	if services.IsFatal(err) {
		return 2
	}
	return 1
}
