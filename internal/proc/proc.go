// Package proc spawns short-lived helper processes (menu builders, dialog
// pickers, focus checks) and reports their outcome with the status codes mpv
// uses for its own subprocess command, so callers can share one table of
// user messages.
package proc

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Status codes reported in Result.Status besides the process exit code.
const (
	StatusUnknown     = -1
	StatusKilled      = -2
	StatusInitFailed  = -3
	StatusUnsupported = -4
)

// Request describes one blocking spawn.
type Request struct {
	Args []string
	// CaptureStderr keeps stderr in the result; otherwise it is discarded.
	CaptureStderr bool
}

// Result mirrors the fields mpv returns for a subprocess.
type Result struct {
	Status int
	Stdout string
	Stderr string
	Err    error
}

// Runner runs a Request to completion.
type Runner interface {
	Run(ctx context.Context, req Request) Result
}

// ExecRunner runs requests with os/exec.
type ExecRunner struct{}

// Run blocks until the process exits or ctx is cancelled. Cancellation kills
// the process and reports StatusKilled.
func (ExecRunner) Run(ctx context.Context, req Request) Result {
	if len(req.Args) == 0 {
		return Result{Status: StatusInitFailed, Err: errors.New("empty command")}
	}
	cmd := exec.CommandContext(ctx, req.Args[0], req.Args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if req.CaptureStderr {
		cmd.Stderr = &stderr
	}
	if err := cmd.Start(); err != nil {
		return Result{Status: StatusInitFailed, Err: err}
	}
	err := cmd.Wait()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
	switch {
	case err == nil:
		res.Status = 0
	case ctx.Err() != nil:
		res.Status = StatusKilled
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			res.Status = exitErr.ExitCode()
		} else {
			res.Status = StatusUnknown
		}
	}
	return res
}
