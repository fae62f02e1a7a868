// Package proc implements the uniform solver-backend contract: spawn an
// external solver as a subprocess, capture its output, measure wall-clock
// time and enforce a hard time limit by killing the whole process group.
package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ErrTimeout is the terminal state shared by every backend (subprocess or
// in-process) when the time limit expires. It is not a solver failure.
var ErrTimeout = errors.New("solver time limit exceeded")

// Invocation describes one solver subprocess run.
type Invocation struct {
	Path  string
	Args  []string
	Stdin string
	// OKExitCodes lists non-zero exit codes that still denote a valid
	// answer (e.g. 10/20 for SAT solvers). Zero is always accepted.
	OKExitCodes []int
}

// RawResult carries the captured subprocess output.
type RawResult struct {
	Stdout   string
	Stderr   string
	Elapsed  time.Duration
	TimedOut bool
	ExitCode int
}

// CrashError reports a subprocess that exited with an unexpected code or
// could not be started at all. The run is marked failed; no record is
// written from it.
type CrashError struct {
	Path     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CrashError) Error() string {
	return fmt.Sprintf("solver %v crashed (exit %v): %v : %v", e.Path, e.ExitCode, e.Err, strings.TrimSpace(e.Stderr))
}

func (e *CrashError) Unwrap() error {
	return e.Err
}

// Invoke runs the solver and blocks until it exits or the limit expires. On
// expiry the subprocess group receives SIGKILL, partial output is returned
// with TimedOut set, and the error is nil: a timeout is a result, not a
// failure. No state is shared across invocations.
func Invoke(inv Invocation, timeLimit time.Duration, log *zap.Logger) (RawResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeLimit)
	defer cancel()

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		// Negative pid targets the whole process group, so solver-spawned
		// children die with it.
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = time.Second

	if inv.Stdin != "" {
		cmd.Stdin = strings.NewReader(inv.Stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("invoking solver",
		zap.String("path", inv.Path),
		zap.Strings("args", inv.Args),
		zap.Duration("limit", timeLimit),
	)

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := RawResult{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Elapsed: elapsed,
	}

	if ctx.Err() == context.DeadlineExceeded {
		result.TimedOut = true
		log.Debug("solver timed out", zap.String("path", inv.Path), zap.Duration("elapsed", elapsed))
		return result, nil
	}

	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}
	if err != nil && !slices.Contains(inv.OKExitCodes, result.ExitCode) {
		return result, &CrashError{Path: inv.Path, ExitCode: result.ExitCode, Stderr: result.Stderr, Err: err}
	}

	log.Debug("solver finished",
		zap.String("path", inv.Path),
		zap.Int("exit", result.ExitCode),
		zap.Duration("elapsed", elapsed),
	)
	return result, nil
}
