// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"zokrates/internal/fixtures"
	"zokrates/internal/perrors"
	"zokrates/internal/propagation"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: zokrates-propagate <fixture.yaml>")
		os.Exit(1)
	}

	path := os.Args[1]

	prog, err := fixtures.Load(path)
	if err != nil {
		color.Red("failed to load fixture: %s", err)
		os.Exit(1)
	}

	color.Cyan("before:")
	fmt.Println(prog.String())

	out, err := propagation.NewPipeline().Run(prog)
	if err != nil {
		reportPassError(err)
		os.Exit(1)
	}

	color.Cyan("after:")
	fmt.Println(out.String())

	color.Green("✅ constant propagation succeeded for %s", path)
}

// reportPassError prints a friendly message for a failed pass. Errors
// are always a *perrors.PropagationError wrapped with %w further up the
// call stack, so errors.As unwraps down to it for colorized reporting.
func reportPassError(err error) {
	var perr *perrors.PropagationError
	if errors.As(err, &perr) {
		fmt.Print(perrors.NewReporter().Format(perr))
		return
	}
	color.Red("unexpected error: %s", err)
}
