// Package ffmpeg provides functionality for locating and invoking the
// FFmpeg executable on behalf of the clipsmith media-generation tool.
package ffmpeg

import (
	"fmt"
	"time"
)

// Private constants (alphabetical)
const (
	// defaultTimeout is the standard timeout for FFmpeg housekeeping
	// operations such as version detection. Operations that exceed this
	// timeout are terminated.
	defaultTimeout = 30 * time.Second

	// errorPrefix is used as a prefix for all error messages from this
	// package. This ensures consistent error formatting across the package.
	errorPrefix = "ffmpeg: "
)

// Public constants (alphabetical)
const (
	// BinaryName is the name of the FFmpeg executable on Unix-like systems.
	BinaryName = "ffmpeg"

	// WindowsBinaryName is the name of the FFmpeg executable on Windows.
	WindowsBinaryName = "ffmpeg.exe"
)

// Public functions (alphabetical)

// FormatError creates a standardized error message with the package prefix.
// It ensures all errors from this package have a consistent format and can be
// easily identified as originating from the ffmpeg package.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}

// GetDefaultTimeout returns the standard timeout duration for FFmpeg
// housekeeping operations. Applications can use this when creating
// contexts or setting command timeouts.
func GetDefaultTimeout() time.Duration {
	return defaultTimeout
}
