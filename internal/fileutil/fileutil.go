// Package fileutil provides file and path helpers shared by the converter and the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HTMLExtension is the extension given to generated documents.
const HTMLExtension = ".html"

// ErrEmptyPath is returned when a write target is empty.
var ErrEmptyPath = errors.New("path cannot be empty")

// sourceExtensions lists the extensions recognized as convertible source text.
var sourceExtensions = []string{".txt", ".md", ".markdown"}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "minimal" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "/absolute/page.html" -> true (absolute)
//   - "C:\styles\doc.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS returns true if the string looks like raw CSS rather than a name or path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}

// IsSourceFile reports whether path has a source text extension (case-insensitive).
func IsSourceFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range sourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// HTMLPath returns path with its extension replaced by .html.
func HTMLPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + HTMLExtension
}

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it over path, so readers never observe a partially written document.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".mdlite-*"+HTMLExtension)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
