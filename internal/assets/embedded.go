package assets

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// builtin holds the style sheets and page templates shipped in the binary.
//
//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader serves the built-in asset tree.
type EmbeddedLoader struct{}

func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.read(styleKind, name)
}

func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.read(templateKind, name)
}

func (e *EmbeddedLoader) read(kind assetKind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	data, err := builtin.ReadFile(kind.slashPath(name))
	if err != nil {
		return "", kind.missing(name)
	}
	return string(data), nil
}

// StyleNames lists the built-in styles in lexical order.
func (e *EmbeddedLoader) StyleNames() []string {
	return builtinNames(styleKind)
}

// TemplateNames lists the built-in page templates in lexical order.
func (e *EmbeddedLoader) TemplateNames() []string {
	return builtinNames(templateKind)
}

func builtinNames(kind assetKind) []string {
	matches, err := fs.Glob(builtin, kind.slashPath("*"))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), kind.ext))
	}
	slices.Sort(names)
	return names
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
