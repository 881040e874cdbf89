// Package ffmpeg provides functionality for locating and invoking the
// FFmpeg executable. Binary resolution searches the current directory
// followed by the entries of an explicit search path, which keeps the
// environment an injected input rather than an implicit global.
package ffmpeg

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// Public variables (alphabetical)

// ErrBinaryNotFound is returned when no FFmpeg executable can be resolved
// from any searched location.
var ErrBinaryNotFound = errors.New(errorPrefix + "could not find ffmpeg binary for system")

// Private functions (alphabetical)

// isExecutableFile reports whether path names a regular file that the
// current process could execute. On Windows the executable bit carries no
// meaning, so existence as a regular file is sufficient there.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

// Public functions (alphabetical)

// FindBinary resolves the FFmpeg executable for the current system. It
// tries the Unix executable name first and the Windows name second, each
// through Which against the process's search path. The result is not
// cached; every call re-searches the path. When neither name resolves,
// ErrBinaryNotFound is returned.
func FindBinary() (string, error) {
	searchPath := os.Getenv("PATH")

	if path := Which(BinaryName, searchPath); path != "" {
		return path, nil
	}
	if path := Which(WindowsBinaryName, searchPath); path != "" {
		return path, nil
	}

	return "", ErrBinaryNotFound
}

// Which resolves a bare executable name against a search path, mimicking
// the behavior of the UNIX which command. The current directory is
// searched first, followed by each entry of searchPath in order; the
// first location holding an executable regular file wins. An empty string
// is returned when no location matches.
func Which(executable string, searchPath string) string {
	dirs := append([]string{"."}, filepath.SplitList(searchPath)...)

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, executable)
		if isExecutableFile(candidate) {
			return candidate
		}
	}

	return ""
}

// WhichPATH resolves a bare executable name against the process's PATH
// environment variable. It is a convenience over Which for callers that
// do not need to inject a search path.
func WhichPATH(executable string) string {
	return Which(executable, os.Getenv("PATH"))
}
