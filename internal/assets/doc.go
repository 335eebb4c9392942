// Package assets supplies the style sheets and page templates that wrap
// converted documents.
//
// Assets come from two places. EmbeddedLoader serves the tree compiled into
// the binary. FilesystemLoader serves a user directory with the same layout:
//
//	{dir}/
//	├── styles/{name}.css
//	└── templates/{name}.html    # uses {{.Title}} and {{.Content}}
//
// AssetResolver stacks the two, user directory first, so a custom tree may
// override a single template and inherit every other asset.
//
// Names are bare identifiers checked by ValidateAssetName, and the
// filesystem loader refuses any path that resolves outside its directory.
package assets
