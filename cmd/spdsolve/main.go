// SPDX-License-Identifier: MIT

// Command spdsolve factors symmetric positive-definite systems read from
// YAML/JSON problem files and prints the factor, the solution or the inverse.
//
//	spdsolve decompose -f problem.yaml
//	spdsolve solve -f problem.yaml --check
//	spdsolve inverse -f problem.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
