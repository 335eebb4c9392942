package assets

import (
	"fmt"
	"path"
)

// Names of the built-in assets.
const (
	DefaultTemplateName = "default"
	DefaultStyleName    = "default"
)

// AssetLoader looks up styles and templates by bare name. A missing asset
// yields ErrStyleNotFound or ErrTemplateNotFound, a malformed name
// ErrInvalidAssetName.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// assetKind says where one kind of asset lives inside an asset tree.
type assetKind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = assetKind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = assetKind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// slashPath is the slash-separated path of name relative to the tree root.
func (k assetKind) slashPath(name string) string {
	return path.Join(k.dir, name+k.ext)
}

// missing wraps the kind's not-found sentinel with the requested name.
func (k assetKind) missing(name string) error {
	return fmt.Errorf("%w: %q", k.notFound, name)
}
