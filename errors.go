package mdlite

import "errors"

// Sentinel errors for library operations.
var (
	ErrRender          = errors.New("document rendering failed")
	ErrInvalidTemplate = errors.New("invalid document template")
	ErrHighlightStyle  = errors.New("unknown highlight style")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrAssetRead        = errors.New("failed to read asset")
)
