// Package verify runs cargo's own manifest verification.
package verify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Verifier checks a manifest with an external tool.
type Verifier interface {
	Verify(ctx context.Context, manifestPath string) error
}

// Error reports that the external tool rejected the manifest.
type Error struct {
	Program  string
	ExitCode int
	Stdout   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s verify-project failed: %s", e.Program, e.Stdout)
}

// Cargo runs `cargo verify-project --manifest-path <path>`.
type Cargo struct {
	// Program is the cargo binary. Empty means $CARGO, then "cargo".
	Program string
}

// NewCargo returns a verifier using the cargo found in the environment.
func NewCargo() *Cargo {
	return &Cargo{}
}

func (c *Cargo) program() string {
	if c.Program != "" {
		return c.Program
	}
	if p := os.Getenv("CARGO"); p != "" {
		return p
	}
	return "cargo"
}

// Verify blocks until the process exits. Only stdout is kept, for the
// failure message; stderr is discarded.
func (c *Cargo) Verify(ctx context.Context, manifestPath string) error {
	prog := c.program()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, prog, "verify-project", "--manifest-path", manifestPath)
	cmd.Stdout = &stdout

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Error{Program: "cargo", ExitCode: exitErr.ExitCode(), Stdout: stdout.String()}
	}
	return fmt.Errorf("could not run %s verify-project: %w", prog, err)
}

// Func adapts a function to the Verifier interface.
type Func func(ctx context.Context, manifestPath string) error

// Verify calls f.
func (f Func) Verify(ctx context.Context, manifestPath string) error {
	return f(ctx, manifestPath)
}
