// Package wsl bridges hostctl operations from a Linux distribution running
// under WSL to the Windows host. Every operation shells out to a Windows
// executable (powershell.exe or cmd.exe) through WSL interop.
package wsl

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/kataras/golog"
	"github.com/mj1618/hostctl/internal/platform"
)

// Runner executes host commands. Tests substitute a fake.
type Runner interface {
	// Output runs name and returns its stdout. A non-zero exit is reported
	// as a *platform.OSCallError carrying stderr.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Start spawns name without waiting for it to finish.
	Start(name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	golog.Debugf("exec %s %s", name, summarizeArgs(args))
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &platform.OSCallError{Op: name, Err: err, Output: stderr.String()}
	}
	return stdout.Bytes(), nil
}

func (ExecRunner) Start(name string, args ...string) error {
	golog.Debugf("spawn %s %s", name, summarizeArgs(args))
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return &platform.OSCallError{Op: name, Err: err}
	}
	// Reap the child so long-running servers don't accumulate zombies.
	go func() {
		if err := cmd.Wait(); err != nil {
			golog.Debugf("%s exited: %v", name, err)
		}
	}()
	return nil
}

// summarizeArgs keeps debug logs readable when an argument is an encoded
// PowerShell script.
func summarizeArgs(args []string) string {
	out := make([]string, len(args))
	for i, a := range args {
		if len(a) > 80 {
			a = a[:77] + "..."
		}
		out[i] = a
	}
	return strings.Join(out, " ")
}

// TimeoutRunner bounds every Output call of the wrapped Runner. Interop
// calls into powershell.exe occasionally hang when the Windows side is
// locked or busy.
type TimeoutRunner struct {
	Runner
	Timeout time.Duration
}

func (r TimeoutRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if r.Timeout <= 0 {
		return r.Runner.Output(ctx, name, args...)
	}
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()
	return r.Runner.Output(ctx, name, args...)
}
