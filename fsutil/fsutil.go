// Package fsutil provides filesystem helpers used across the clipsmith
// toolchain. It covers source file enumeration, directory lifecycle
// management, and small path-normalization utilities.
//
// Every function is a single synchronous call with no state across calls.
// Callers that operate concurrently on the same paths are responsible for
// their own serialization; this package provides no locking.
package fsutil

import (
	"os"
	"strings"
)

// Private constants (alphabetical)

const (
	// dirMode is the permission mode applied to directories created by
	// EnsureDir and RecreateDir.
	dirMode = 0o755

	// fileMode is the permission mode applied to files created by Touch.
	fileMode = 0o644
)

// Private functions (alphabetical)
// None currently defined

// Public functions (alphabetical)

// CollectFiles resolves a list of sources into a flat list of file paths.
// A source that is a directory is expanded to its direct, non-hidden,
// file-only children; subdirectories are not descended into. A source
// that is a file is included as-is. Input order is preserved, and the
// per-directory order is whatever the operating system enumeration
// produced. Errors from the underlying filesystem calls are returned
// unmodified.
func CollectFiles(sources []string) ([]string, error) {
	var files []string

	for _, source := range sources {
		info, err := os.Stat(source)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, source)
			continue
		}

		children, err := ListDirNoHidden(source)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			childInfo, err := os.Stat(child)
			if err != nil {
				return nil, err
			}
			if !childInfo.IsDir() {
				files = append(files, child)
			}
		}
	}

	return files, nil
}

// DeleteDir recursively deletes each of the given directories. A
// directory that does not exist is skipped, which makes the call
// idempotent.
func DeleteDir(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates each of the given directories along with any missing
// parents. Directories that already exist are left untouched, which makes
// the call idempotent.
func EnsureDir(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return err
		}
	}
	return nil
}

// ListDirNoHidden returns the paths of the entries directly under path,
// skipping hidden entries (names beginning with a dot). The path is
// treated as a directory prefix regardless of whether it carries a
// trailing separator.
func ListDirNoHidden(path string) ([]string, error) {
	prefix := SanitizeDirName(path)

	entries, err := os.ReadDir(prefix)
	if err != nil {
		return nil, err
	}

	var children []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		children = append(children, prefix+entry.Name())
	}

	return children, nil
}

// RecreateDir deletes and recreates each of the given directories,
// creating any missing parents. On success every directory exists and is
// empty. The delete and recreate steps are not atomic; a concurrent
// reader could observe the directory absent in between.
func RecreateDir(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return err
		}
	}
	return nil
}

// SanitizeDirName normalizes a directory path so that it ends with
// exactly one trailing path separator, regardless of how many the input
// carried.
func SanitizeDirName(dir string) string {
	sep := string(os.PathSeparator)
	return strings.TrimRight(dir, sep) + sep
}

// Touch guarantees that a file exists at path. A missing file is created
// empty; an existing file keeps its content.
func Touch(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return err
	}
	return file.Close()
}
