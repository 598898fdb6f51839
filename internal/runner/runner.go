// Package runner executes rendered build steps through the host shell.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/autodiff/adtask/pkgs/buildsys"
	"github.com/autodiff/adtask/pkgs/platform"
	"github.com/qiniu/x/log"
	"golang.org/x/sys/execabs"
)

// ExitError reports a step whose process exited with a non-zero status.
type ExitError struct {
	Step buildsys.Step
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Step.Name, e.Code)
}

// ExitCode maps err to a process exit status: 0 for nil, the external
// status for an *ExitError and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// Runner runs steps one at a time, stopping at the first failure.
type Runner struct {
	shell  platform.Shell
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	echo   bool
	dryRun bool
}

// Option configures a Runner.
type Option func(*Runner)

func WithStdin(r io.Reader) Option { return func(p *Runner) { p.stdin = r } }
func WithStdout(w io.Writer) Option { return func(p *Runner) { p.stdout = w } }
func WithStderr(w io.Writer) Option { return func(p *Runner) { p.stderr = w } }

// WithEcho prints every command line before it runs.
func WithEcho(on bool) Option { return func(p *Runner) { p.echo = on } }

// WithDryRun prints every command line and runs nothing.
func WithDryRun(on bool) Option { return func(p *Runner) { p.dryRun = on } }

// New returns a Runner that hands command lines to shell.
func New(shell platform.Shell, opts ...Option) *Runner {
	r := &Runner{
		shell:  shell,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes steps in order. The first step that fails ends the run and
// its error is returned; later steps are not started.
func (r *Runner) Run(ctx context.Context, steps ...buildsys.Step) error {
	for _, step := range steps {
		if r.echo || r.dryRun {
			fmt.Fprintln(r.stdout, step)
		}
		if r.dryRun {
			continue
		}
		if err := r.run(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) run(ctx context.Context, step buildsys.Step) error {
	log.Debugf("running %s in %q: %s", step.Name, step.Dir, step.Line)

	cmd := execabs.CommandContext(ctx, r.shell.Path, r.shell.Flag, step.Line)
	setCmdLine(cmd, r.shell, step.Line)
	cmd.Dir = step.Dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return &ExitError{Step: step, Code: exitErr.ExitCode()}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", step.Name, err)
	}
	return nil
}
