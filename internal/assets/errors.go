package assets

import "errors"

// Lookup failures. The root package maps them onto its own sentinels, so
// CLI users never see these values directly.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName rejects anything but a bare name: no separators,
	// no dots and no extension.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath reports an asset directory that is missing,
	// unreadable or not a directory.
	ErrInvalidBasePath = errors.New("invalid asset directory")

	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal reports a resolved asset path, symlinks followed,
	// that lands outside the asset directory.
	ErrPathTraversal = errors.New("asset path escapes asset directory")
)
