package exec

import (
	"context"
	"fmt"
	"io"
	osexec "os/exec"

	"github.com/bitfield/script"
	"github.com/pkg/errors"

	"github.com/mitander/kalandra/models"
)

// Runner launches the fuzzing engine for one target and blocks until it
// exits. Implementations must send all combined output to out. The
// returned exit code is meaningful only when err is an *EngineExitError
// or nil; a launch failure reports -1.
type Runner interface {
	Run(ctx context.Context, target models.Target, seconds int, out io.Writer) (int, error)
}

// EngineExitError means the engine started but exited non-zero: a crash,
// a sanitizer abort, or the engine being killed.
type EngineExitError struct {
	Target string
	Code   int
}

func (e *EngineExitError) Error() string {
	return fmt.Sprintf("engine exited with status %d for target %s", e.Code, e.Target)
}

// EngineRunner drives cargo-fuzz. The engine is opaque: the orchestrator
// passes a target name and a time budget and observes the exit status.
type EngineRunner struct {
	binary string
}

func NewEngineRunner(binary string) *EngineRunner {
	return &EngineRunner{binary: binary}
}

// Cmdline builds the engine invocation for one target.
func Cmdline(binary, target string, seconds int) string {
	return fmt.Sprintf("%s fuzz run %s -- -max_total_time=%d", binary, target, seconds)
}

func (r *EngineRunner) Run(ctx context.Context, target models.Target, seconds int, out io.Writer) (int, error) {
	cmdline := Cmdline(r.binary, target.Name, seconds)

	type runResult struct {
		code int
		err  error
	}

	done := make(chan runResult, 1)
	go func() {
		pipe := script.NewPipe().Exec(cmdline)
		pipe = pipe.WithStdout(out).WithStderr(out)
		_, err := pipe.Stdout()
		code := pipe.ExitStatus()
		if err != nil && code == 0 {
			// Engine never started (binary missing, exec error).
			done <- runResult{code: -1, err: errors.Wrapf(err, "failed to launch engine for %s", target.Name)}
			return
		}
		if code != 0 {
			err = &EngineExitError{Target: target.Name, Code: code}
		} else {
			err = nil
		}
		done <- runResult{code: code, err: err}
	}()

	select {
	case <-ctx.Done():
		return -1, ctx.Err()
	case res := <-done:
		return res.code, res.err
	}
}

// Preflight reports whether the engine binary resolves on PATH. A miss
// is advisory: the campaign still runs and each target records its own
// launch failure.
func Preflight(binary string) error {
	if _, err := osexec.LookPath(binary); err != nil {
		return errors.Wrapf(err, "fuzzing engine %q not found", binary)
	}
	return nil
}
