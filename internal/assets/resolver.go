package assets

import "errors"

// AssetResolver searches an ordered list of loaders: the custom asset
// directory when one is configured, then the built-in assets. It moves on
// only when a loader lacks the asset, so a bad name or an unreadable file in
// the custom directory is reported rather than masked by a built-in.
type AssetResolver struct {
	layers []AssetLoader
}

// NewAssetResolver builds a resolver over dir and the built-in assets, or
// over the built-ins alone when dir is empty.
func NewAssetResolver(dir string) (*AssetResolver, error) {
	var layers []AssetLoader
	if dir != "" {
		custom, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		layers = append(layers, custom)
	}
	return &AssetResolver{layers: append(layers, NewEmbeddedLoader())}, nil
}

func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

// first returns the asset from the first layer that has it, or the last
// layer's not-found error.
func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, layer := range r.layers {
		var content string
		if content, err = load(layer); !isNotFoundError(err) {
			return content, err
		}
	}
	return "", err
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

// HasCustomLoader reports whether a custom directory sits in front of the
// built-in assets.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.layers) > 1
}

var _ AssetLoader = (*AssetResolver)(nil)
