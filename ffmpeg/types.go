// Package ffmpeg provides functionality for locating and invoking the
// FFmpeg executable.
package ffmpeg

import "fmt"

// Private types (alphabetical)
// None currently defined

// Public types (alphabetical)

// CommandError describes an FFmpeg invocation that started but exited
// with a non-zero status. It carries the exact exit code and the full
// captured standard-error text so that callers can report or classify
// the failure.
type CommandError struct {
	// ExitCode is the non-zero exit code returned by the process.
	ExitCode int

	// Stderr is the complete captured standard-error output.
	Stderr string
}

// Error implements the error interface with the package's standard prefix.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%serror executing ffmpeg command: exit code %d: %s",
		errorPrefix, e.ExitCode, e.Stderr)
}

// Info contains information about the FFmpeg installation.
type Info struct {
	// Installed is true if FFmpeg is found on the system.
	Installed bool

	// Path is the full path to the FFmpeg executable.
	Path string

	// Version is the version of FFmpeg.
	Version string
}
