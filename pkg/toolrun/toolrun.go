// Package toolrun runs the external tools andebox wraps (ansible-test, tox)
// with the caller's standard streams attached.
package toolrun

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	pkgerrors "github.com/andebox/andebox/pkg/errors"
	"github.com/andebox/andebox/pkg/observability"
)

// Command describes one tool invocation.
type Command struct {
	Name string
	Args []string
	Dir  string   // working directory; empty means the current one
	Env  []string // full environment; nil inherits the current one

	Stdin  io.Reader // defaults to os.Stdin
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
}

// Runner executes commands.
type Runner interface {
	Run(ctx context.Context, c Command) error
}

// Exec runs commands as child processes.
type Exec struct{}

// Run starts the command and waits for it. A non-zero exit status is
// returned as a COMMAND_FAILED error wrapping *errors.CommandError.
func (Exec) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env
	cmd.Stdin = orReader(c.Stdin, os.Stdin)
	cmd.Stdout = orWriter(c.Stdout, os.Stdout)
	cmd.Stderr = orWriter(c.Stderr, os.Stderr)

	observability.Command().OnCommandStart(ctx, c.Name, c.Args)
	start := time.Now()
	err := cmd.Run()

	code := 0
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
		err = pkgerrors.Wrap(pkgerrors.ErrCodeCommandFailed,
			&pkgerrors.CommandError{Name: c.Name, ExitCode: code}, "%s failed", c.Name)
	case ctx.Err() != nil:
		err = ctx.Err()
	default:
		err = pkgerrors.Wrap(pkgerrors.ErrCodeCommandFailed, err, "cannot run %s", c.Name)
	}

	observability.Command().OnCommandComplete(ctx, c.Name, code, time.Since(start), err)
	return err
}

func orReader(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
