package main

import (
	"fmt"
	"os"

	"github.com/temirov/licenselock/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
	exitCodeSuccessConstant   = 0
	exitCodeFailureConstant   = 1
)

// main executes the license-lock command-line application.
func main() {
	os.Exit(run())
}

func run() int {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		return exitCodeFailureConstant
	}
	return exitCodeSuccessConstant
}
