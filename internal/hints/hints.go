// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-mdlite"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if filepath.Base(filepath.Dir(p)) == configDirName {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputNotFound returns hints when the input path does not exist.
func ForInputNotFound(path string) string {
	if path == "" {
		return ""
	}
	return format("pass a .txt, .md or .markdown file or a directory; " + path + " was not found")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	return forAvailable(available)
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound(available []string) string {
	return forAvailable(available)
}

// ForTemplateNoContent returns hints for templates missing the insertion point.
func ForTemplateNoContent() string {
	return format("add {{.Content}} where the converted body belongs")
}

// ForHighlightStyle returns hints for unknown highlight styles.
func ForHighlightStyle(examples []string) string {
	if len(examples) == 0 {
		return ""
	}
	return format("try one of: " + strings.Join(examples, ", "))
}

func forAvailable(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
