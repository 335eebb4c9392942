package main

import (
	"errors"
	"os"

	mdlite "github.com/alnah/go-mdlite"
	"github.com/alnah/go-mdlite/internal/config"
)

// Exit codes for the mdlite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or style
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/asset errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrMissingField) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, mdlite.ErrStyleNotFound) ||
		errors.Is(err, mdlite.ErrTemplateNotFound) ||
		errors.Is(err, mdlite.ErrInvalidTemplate) ||
		errors.Is(err, mdlite.ErrInvalidAssetPath) ||
		errors.Is(err, mdlite.ErrHighlightStyle) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, mdlite.ErrAssetRead) {
		return ExitIO
	}

	return ExitGeneral
}
