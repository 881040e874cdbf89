// Package ffmpeg provides functionality for locating and invoking the
// FFmpeg executable. Detection resolves the binary through the search
// path and interrogates it for version information.
package ffmpeg

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// Private variables (alphabetical)

// ffmpegVersionRegex is used to detect the FFmpeg version from version
// output. It extracts the numeric version (e.g., 4.4.1) and tolerates
// the 'n' prefix that git builds of FFmpeg carry.
var ffmpegVersionRegex = regexp.MustCompile(`(?i)(?:version|ffmpeg)\s+(?:n)?(\d+\.\d+(?:\.\d+(?:\.\d+)?)?)`)

// Private functions (alphabetical)

// parseVersionFromFirstLine parses the version string from the first line
// of FFmpeg version output, stripping git-build prefixes and development
// suffixes.
func parseVersionFromFirstLine(firstLine string) string {
	versionParts := strings.Split(firstLine, " version ")
	if len(versionParts) < 2 {
		return ""
	}

	remainingParts := strings.Fields(versionParts[1])
	if len(remainingParts) == 0 {
		return ""
	}

	versionStr := remainingParts[0]

	// Remove 'n' prefix if present (git versioning)
	versionStr = strings.TrimPrefix(versionStr, "n")

	// Remove development suffix if present (e.g., -dev-1234)
	if idx := strings.Index(versionStr, "-dev"); idx > 0 {
		versionStr = versionStr[:idx]
	}

	return versionStr
}

// parseVersion extracts the version number from complete FFmpeg version
// output, trying the version regex first and falling back to first-line
// parsing. It returns "unknown" when nothing can be extracted.
func parseVersion(versionOutput string) string {
	matches := ffmpegVersionRegex.FindStringSubmatch(versionOutput)
	if len(matches) >= 2 {
		return matches[1]
	}

	lines := strings.Split(versionOutput, "\n")
	if len(lines) > 0 {
		if version := parseVersionFromFirstLine(lines[0]); version != "" {
			return version
		}
	}

	return "unknown"
}

// Public functions (alphabetical)

// Detect locates the FFmpeg installation on the system and interrogates
// it for its version. When no binary can be resolved it returns an Info
// with Installed set to false and no error; any other failure while
// querying the binary is returned to the caller.
func Detect() (*Info, error) {
	path, err := FindBinary()
	if err != nil {
		if errors.Is(err, ErrBinaryNotFound) {
			return &Info{Installed: false}, nil
		}
		return &Info{Installed: false}, err
	}

	return DetectAt(path)
}

// DetectAt interrogates the FFmpeg executable at an explicit path for its
// version, bypassing search-path resolution. It is used when the binary
// location is supplied by configuration rather than discovered.
func DetectAt(path string) (*Info, error) {
	ctx, cancel := context.WithTimeout(context.Background(), GetDefaultTimeout())
	defer cancel()

	output, err := ExecuteCommand(ctx, []string{path, "-version"})
	if err != nil {
		return &Info{Path: path, Installed: false}, FormatError("error getting FFmpeg version: %w", err)
	}

	return &Info{
		Installed: true,
		Path:      path,
		Version:   parseVersion(output),
	}, nil
}
