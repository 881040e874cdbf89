// Package ffmpeg provides functionality for locating and invoking the
// FFmpeg executable.
package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Public functions (alphabetical)

// ExecuteCommand spawns a single child process from the given argument
// sequence, where args[0] is the executable and the rest are its
// arguments. Standard output and standard error are buffered fully in
// memory and the call blocks until the process exits; no process is left
// running in the background.
//
// On a non-zero exit the call fails with a *CommandError carrying the
// exit code and the captured standard-error text. On success the
// captured standard output is returned to the caller. The context
// parameter allows cancellation of long-running invocations; a context
// failure terminates the child process.
func ExecuteCommand(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", FormatError("empty command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return "", FormatError("error executing command: %w", err)
	}

	return stdout.String(), nil
}
