package watch

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"
)

const waitDelay = 2 * time.Second

// Command starts name with args, watches its standard output and stops the
// process once the sentinel appears. The process's standard error is copied
// to stderr when non-nil.
func Command(ctx context.Context, name string, args []string, echo, stderr io.Writer) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	// Grandchildren may hold the output pipes open after the kill.
	cmd.WaitDelay = waitDelay
	if stderr != nil {
		cmd.Stderr = stderr
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, fmt.Errorf("attach to %s: %w", name, err)
	}
	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("start %s: %w", name, err)
	}

	result, watchErr := Watch(ctx, stdout, echo)

	// The host may keep running after the sentinel; stopping it is the point.
	cancel()
	waitErr := cmd.Wait()

	if watchErr != nil {
		return result, watchErr
	}
	if !result.Finished && waitErr != nil {
		return result, fmt.Errorf("%s exited before finishing: %w", name, waitErr)
	}
	return result, nil
}
