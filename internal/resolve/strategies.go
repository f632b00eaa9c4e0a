package resolve

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultCommandTimeout bounds a Command strategy when no explicit timeout
// is configured. A hung subprocess must never block resolution.
const DefaultCommandTimeout = 5 * time.Second

// Func adapts a plain function to a Strategy.
type Func struct {
	Name string
	Run  func(ctx context.Context) (string, error)
}

func (f Func) Source() string { return f.Name }

func (f Func) Attempt(ctx context.Context) (string, error) {
	if f.Run == nil {
		return "", fmt.Errorf("no run function")
	}
	return f.Run(ctx)
}

// Command resolves a field by running an external program and capturing
// its standard output, trimmed of surrounding whitespace. A nonzero exit,
// I/O error, or deadline expiry counts as failure; on expiry the process
// is killed rather than awaited.
type Command struct {
	Name    string
	Dir     string
	Argv    []string
	Timeout time.Duration
}

func (c Command) Source() string { return c.Name }

func (c Command) Attempt(ctx context.Context) (string, error) {
	if len(c.Argv) == 0 {
		return "", fmt.Errorf("empty argv")
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...) //nolint:gosec // argv is fixed by field configuration, not user input
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", strings.Join(c.Argv, " "), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Env resolves a field from an environment variable. Unset or blank
// variables count as failure.
type Env struct {
	Name string
	Var  string
}

func (e Env) Source() string { return e.Name }

func (e Env) Attempt(context.Context) (string, error) {
	v := strings.TrimSpace(os.Getenv(e.Var))
	if v == "" {
		return "", fmt.Errorf("%s is not set", e.Var)
	}
	return v, nil
}
