// Command cargolint checks a Cargo.toml manifest for structural conventions
// that cargo itself does not enforce.
//
// Usage:
//
//	# Lint with every check at its strictest
//	cargolint Cargo.toml
//
//	# Skip cargo verify-project and only check dependency order by section
//	cargolint --no-cargo-verify --sort-dependencies section Cargo.toml
//
//	# Read defaults from a config file; flags still win
//	cargolint --config cargolint.yaml -T disabled Cargo.toml
//
// Exit status is 0 when the manifest passes, 1 when a check fails and 2
// when the command itself could not run.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/cargolint/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
